package rtr

import (
	"maps"
	"slices"

	"github.com/rohanthewiz/rnav/consts"
)

// Node is a compiled route in an immutable Tree.
//
// Each node knows its fragment split into segments, the full pattern from the
// root and its child groups, pre-sorted for the two matching passes:
//
//	root ("")                      pattern: /
//	 └── "workspace/:wid"          pattern: /workspace/:wid
//	      ├── "" (index)           pattern: /workspace/:wid
//	      └── "projects/:pid"      pattern: /workspace/:wid/projects/:pid
//
// Nodes are shared by every MatchStack produced from the tree and are never
// modified after Build returns.
type Node struct {
	id       int
	fragment string   // as written in the definition
	segments []string // normalized fragment split on "/"
	pattern  string   // normalized pattern from the root
	content  any
	name     string
	outlet   string // named outlet group holding this node, "" for default children
	depth    int    // nesting level, roots are 0
	parent   *Node
	children group
	outlets  map[string]*group
	names    []string // outlet names, sorted
}

// group is one list of sibling routes, either the default children of a node,
// one of its named outlets or the roots of a tree.
type group struct {
	nodes   []*Node      // declaration order
	index   *Node        // the empty-fragment child, if any
	literal literalIndex // candidates whose first segment is literal
	params  []*Node      // candidates whose first segment is a parameter, in declaration order
}

func (g *group) add(n *Node) {
	g.nodes = append(g.nodes, n)

	switch {
	case len(n.segments) == 0:
		g.index = n
	case IsParam(n.segments[0]):
		g.params = append(g.params, n)
	default:
		if g.literal == nil {
			g.literal = make(literalIndex, 4)
		}
		g.literal.add(n.segments[0], n)
	}
}

func (g *group) empty() bool {
	return g == nil || len(g.nodes) == 0
}

// ID is the node's position in a pre-order walk of its tree.
func (n *Node) ID() int { return n.id }

func (n *Node) Fragment() string { return n.fragment }

// Segments returns the normalized fragment segments.
func (n *Node) Segments() []string { return slices.Clone(n.segments) }

// Pattern returns the full route pattern with a leading slash.
func (n *Node) Pattern() string { return consts.StrSlash + n.pattern }

func (n *Node) Content() any     { return n.content }
func (n *Node) HasContent() bool { return n.content != nil }
func (n *Node) Name() string     { return n.name }

// Outlet returns the name of the outlet group the node was declared in.
// Default children and roots return "".
func (n *Node) Outlet() string { return n.outlet }

// Depth is the nesting level of the node, roots are 0.
func (n *Node) Depth() int { return n.depth }

// Parent returns nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// IsIndex reports whether the node has an empty fragment.
func (n *Node) IsIndex() bool { return len(n.segments) == 0 }

// IsLayout reports whether the node renders default children through an outlet.
func (n *Node) IsLayout() bool { return !n.children.empty() }

// Children returns the default children in declaration order.
func (n *Node) Children() []*Node { return slices.Clone(n.children.nodes) }

// IndexChild returns the default index child, if any.
func (n *Node) IndexChild() (*Node, bool) {
	return n.children.index, n.children.index != nil
}

// OutletNames returns the node's named outlets, sorted.
func (n *Node) OutletNames() []string { return slices.Clone(n.names) }

// OutletChildren returns the children of a named outlet.
func (n *Node) OutletChildren(name string) ([]*Node, bool) {
	g, ok := n.outlets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(g.nodes), true
}

func (n *Node) String() string {
	if n.name != "" {
		return n.name
	}
	return n.Pattern()
}

// match compares the node's fragment with the head of path.
// On success it returns the unconsumed rest of the path, the consumed segments
// joined onto prefix and the parameters bound by this fragment alone.
func (n *Node) match(path, prefix string) (rest, consumed string, bound Params, ok bool) {
	rest = path
	consumed = prefix

	for _, segment := range n.segments {
		var first string
		first, rest = SplitFirst(rest)

		kind, name := MatchSegment(segment, first)
		switch kind {
		case MatchNone:
			return "", "", nil, false
		case MatchParam:
			bound = append(bound, Parameter{Key: name, Value: first})
		}

		consumed = JoinPath(consumed, first)
	}

	return Normalize(rest), consumed, bound, true
}

// each calls the callback on n and then on every descendant, default
// children before named outlets, outlets in name order.
func (n *Node) each(callback func(*Node) bool) bool {
	if !callback(n) {
		return false
	}

	for _, child := range n.children.nodes {
		if !child.each(callback) {
			return false
		}
	}

	for _, name := range n.names {
		for _, child := range n.outlets[name].nodes {
			if !child.each(callback) {
				return false
			}
		}
	}

	return true
}

func sortedOutletNames(outlets map[string]*group) []string {
	if len(outlets) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(outlets))
}
