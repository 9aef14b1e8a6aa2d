package rtr

import (
	"fmt"
)

// RouteList describes a compiled route for debugging and inspection.
//
// Fields:
//   - Pattern: the full route pattern (e.g. "/users/:id")
//   - Fragment: the fragment as declared on the route
//   - Depth: nesting level, roots are 0
//   - Outlet: the named outlet the route belongs to, "" for default children
//   - Kind: "index", "layout" or "leaf"
//   - Params: parameter names bound by the fragment
//   - ContentRef: type of the content handle, "" for pure layouts
type RouteList struct {
	Pattern    string
	Fragment   string
	Name       string
	Depth      int
	Outlet     string
	Kind       string
	Params     []string
	ContentRef string
}

// ListRoutes lists every route of the tree in pre-order.
func (tree *Tree) ListRoutes() (routes []RouteList) {
	if tree == nil {
		return nil
	}

	tree.Walk(func(n *Node) bool {
		routes = append(routes, n.describe())
		return true
	})
	return routes
}

func (n *Node) describe() RouteList {
	rl := RouteList{
		Pattern:  n.Pattern(),
		Fragment: n.fragment,
		Name:     n.name,
		Depth:    n.depth,
		Outlet:   n.outlet,
		Kind:     n.kind(),
	}

	for _, segment := range n.segments {
		if IsParam(segment) {
			rl.Params = append(rl.Params, ParamName(segment))
		}
	}

	if n.content != nil {
		rl.ContentRef = fmt.Sprintf("%T", n.content)
	}
	return rl
}

func (n *Node) kind() string {
	switch {
	case n.IsIndex() && n.parent != nil:
		return "index"
	case n.IsLayout():
		return "layout"
	default:
		return "leaf"
	}
}
