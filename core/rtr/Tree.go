package rtr

import (
	"maps"
	"slices"

	"github.com/rohanthewiz/rnav/consts"
)

// Tree is a validated, compiled route tree.
//
// A Tree is immutable once Build returns it, so any number of goroutines may
// resolve against it concurrently. Replacing the route table means building a
// new Tree and installing it on the Router.
//
// Structure example for the definition
//
//	NewRoute("/", shell).Child(
//		NewRoute("dashboard", dash).Child(Index(overview), NewRoute("settings", settings)),
//		NewRoute("users/:id", user),
//	)
//
// compiles to
//
//	"" (root layout)
//	 ├── "dashboard"
//	 │    ├── "" (index)
//	 │    └── "settings"
//	 └── "users/:id"
//
// where every node knows its literal and parameter siblings up front.
type Tree struct {
	roots group
	nodes []*Node // pre-order, indexed by Node.ID
	depth int     // deepest nesting level present
}

// Build validates route definitions and compiles them into a Tree.
//
// Validation rejects, with a *ConstructionError:
//   - more than one index route in any child list or outlet group
//   - child fragments starting with "/"
//   - named outlets with an empty name
//   - parameter segments without a name (":" or ":{uuid}")
//   - nesting deeper than consts.MaxDepth
//   - a definition that appears among its own ancestors
//
// Build copies everything it needs, so the definitions may be reused or
// modified afterwards without affecting the returned tree.
func Build(roots ...*Route) (*Tree, error) {
	b := &builder{ancestors: make(map[*Route]bool)}
	tree := &Tree{}

	for _, route := range roots {
		node, err := b.compile(route, nil, "", 0)
		if err != nil {
			return nil, err
		}

		if node.IsIndex() && tree.roots.index != nil {
			return nil, newConstructionError(ErrMultipleIndexRoutes, node.Pattern(), "",
				"more than one root with an empty fragment")
		}
		tree.roots.add(node)
	}

	tree.nodes = b.nodes
	tree.depth = b.maxDepth
	return tree, nil
}

// MustBuild is like Build but panics on an invalid definition.
// Meant for static route tables set up at program start.
func MustBuild(roots ...*Route) *Tree {
	tree, err := Build(roots...)
	if err != nil {
		panic(err)
	}
	return tree
}

// Roots returns the top-level nodes in declaration order.
func (tree *Tree) Roots() []*Node {
	return slices.Clone(tree.roots.nodes)
}

// Len returns the number of compiled routes.
func (tree *Tree) Len() int {
	return len(tree.nodes)
}

// Depth returns the deepest nesting level in the tree, roots being 0.
func (tree *Tree) Depth() int {
	return tree.depth
}

// Node returns the node with the given ID.
func (tree *Tree) Node(id int) (*Node, bool) {
	if id < 0 || id >= len(tree.nodes) {
		return nil, false
	}
	return tree.nodes[id], true
}

// Walk visits every node in pre-order until fn returns false.
func (tree *Tree) Walk(fn func(*Node) bool) {
	for _, root := range tree.roots.nodes {
		if !root.each(fn) {
			return
		}
	}
}

// builder carries the state of one Build call.
type builder struct {
	nodes     []*Node
	ancestors map[*Route]bool
	maxDepth  int
}

func (b *builder) compile(route *Route, parent *Node, outlet string, depth int) (*Node, error) {
	parentPattern := ""
	if parent != nil {
		parentPattern = parent.pattern
	}

	if route == nil {
		return nil, newConstructionError(ErrNilRoute, consts.StrSlash+parentPattern, outlet, "")
	}

	pattern := JoinPath(parentPattern, route.Fragment)
	where := consts.StrSlash + pattern

	if b.ancestors[route] {
		return nil, newConstructionError(ErrRouteCycle, where, outlet, "")
	}

	if depth >= consts.MaxDepth {
		return nil, newConstructionError(ErrMaxDepthExceeded, where, outlet, "")
	}

	if parent != nil && len(route.Fragment) > 0 && route.Fragment[0] == consts.RuneFwdSlash {
		return nil, newConstructionError(ErrAbsoluteChildFragment, where, outlet,
			"child fragments are relative to their parent: "+route.Fragment)
	}

	segments := Segments(route.Fragment)
	for _, segment := range segments {
		if segment[0] == consts.RuneColon && ParamName(segment) == "" {
			return nil, newConstructionError(ErrInvalidParam, where, outlet, segment)
		}
	}

	node := &Node{
		id:       len(b.nodes),
		fragment: route.Fragment,
		segments: segments,
		pattern:  pattern,
		content:  route.Content,
		name:     route.Name,
		outlet:   outlet,
		depth:    depth,
		parent:   parent,
	}
	b.nodes = append(b.nodes, node)
	b.maxDepth = max(b.maxDepth, depth)

	b.ancestors[route] = true
	defer delete(b.ancestors, route)

	if err := b.compileGroup(&node.children, route.Children, node, "", depth+1); err != nil {
		return nil, err
	}

	if len(route.Outlets) > 0 {
		node.outlets = make(map[string]*group, len(route.Outlets))

		for _, name := range slices.Sorted(maps.Keys(route.Outlets)) {
			if name == "" {
				return nil, newConstructionError(ErrEmptyOutletName, where, "", "")
			}

			g := &group{}
			if err := b.compileGroup(g, route.Outlets[name], node, name, depth+1); err != nil {
				return nil, err
			}
			node.outlets[name] = g
		}
		node.names = sortedOutletNames(node.outlets)
	}

	return node, nil
}

func (b *builder) compileGroup(g *group, routes []*Route, parent *Node, outlet string, depth int) error {
	for _, route := range routes {
		child, err := b.compile(route, parent, outlet, depth)
		if err != nil {
			return err
		}

		if child.IsIndex() && g.index != nil {
			return newConstructionError(ErrMultipleIndexRoutes, parent.Pattern(), outlet, "")
		}
		g.add(child)
	}
	return nil
}
