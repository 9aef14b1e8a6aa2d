package rtr

// literalIndex maps the first literal segment of sibling fragments to the
// siblings declaring it, in declaration order.
//
// The literal pass of matching is then a single map lookup per level instead
// of a scan over every sibling. Several siblings may share a first segment
// ("projects" and "projects/:pid"), so each key holds a list.
type literalIndex map[string][]*Node

func (li literalIndex) add(segment string, n *Node) {
	li[segment] = append(li[segment], n)
}

// lookup returns the candidates for a path segment.
// Reading a nil index is fine and returns nil.
func (li literalIndex) lookup(segment string) []*Node {
	return li[segment]
}

