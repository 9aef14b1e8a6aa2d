package rnav

import (
	"path"

	"github.com/rohanthewiz/rnav/core/rtr"
)

// Group builds a layout route and its children fluently.
// A group created from the Navigator becomes a root route on Commit; groups
// created from another group are nested under it immediately.
//
//	nav.Group("/dashboard", dashboardView).
//		Index(overviewView).
//		Route("settings", settingsView).
//		Outlet("sidebar", rtr.Index(navView))
//	err := nav.Commit()
type Group struct {
	// prefix is the full pattern of the group, for inspection
	prefix string
	// route is the definition the group appends to
	route *rtr.Route
	nav   *Navigator
}

// Group stages a new root layout route for the next Commit.
func (n *Navigator) Group(fragment string, content any) *Group {
	route := rtr.NewRoute(fragment, content)

	n.mu.Lock()
	n.staged = append(n.staged, route)
	n.mu.Unlock()

	return &Group{
		prefix: path.Join("/", fragment),
		route:  route,
		nav:    n,
	}
}

// Group nests a child layout under the group and returns it.
func (g *Group) Group(fragment string, content any) *Group {
	child := rtr.NewRoute(fragment, content)
	g.route.Child(child)

	return &Group{
		// Combine parent and child prefixes using path.Join for proper path construction
		prefix: path.Join(g.prefix, fragment),
		route:  child,
		nav:    g.nav,
	}
}

// Route adds a child route.
func (g *Group) Route(fragment string, content any) *Group {
	g.route.Child(rtr.NewRoute(fragment, content))
	return g
}

// Index adds the index child.
func (g *Group) Index(content any) *Group {
	g.route.Child(rtr.Index(content))
	return g
}

// Add appends prepared child definitions.
func (g *Group) Add(routes ...*rtr.Route) *Group {
	g.route.Child(routes...)
	return g
}

// Outlet appends children to a named outlet of the group's route.
func (g *Group) Outlet(name string, routes ...*rtr.Route) *Group {
	g.route.Outlet(name, routes...)
	return g
}

// Named labels the group's route for inspection.
func (g *Group) Named(name string) *Group {
	g.route.Named(name)
	return g
}

// Prefix returns the full pattern of the group.
func (g *Group) Prefix() string {
	return g.prefix
}

// Commit registers every staged group of the navigator.
func (g *Group) Commit() error {
	return g.nav.Commit()
}
