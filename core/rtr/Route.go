package rtr

// Route is a route definition as written by the application, before Build
// compiles it into an immutable Tree.
//
// A Route may be edited freely until it is passed to Build. The compiled tree
// keeps no reference to the definition's slices or maps, so later edits never
// leak into an installed tree.
//
// Example:
//
//	root := rtr.NewRoute("/", shell).Child(
//		rtr.NewRoute("dashboard", dashboard).Child(
//			rtr.Index(overview),
//			rtr.NewRoute("settings", settings),
//		),
//	)
type Route struct {
	// Fragment is the path pattern relative to the parent.
	// "" marks an index route, ":name" a parameter, ":name{constraint}" a
	// constrained parameter. Several segments may be combined ("projects/:pid").
	Fragment string

	// Content is an opaque handle to what renders for this route.
	// Nil makes the route a pure layout.
	Content any

	// Name is an optional label used in inspection output.
	Name string

	// Children are the routes rendered by the default outlet.
	Children []*Route

	// Outlets are parallel child groups rendered by named outlets.
	Outlets map[string][]*Route
}

// NewRoute creates a route definition.
func NewRoute(fragment string, content any) *Route {
	return &Route{Fragment: fragment, Content: content}
}

// Index creates an index route, the default child of its parent.
func Index(content any) *Route {
	return &Route{Content: content}
}

// Child appends default children and returns the route for chaining.
func (r *Route) Child(children ...*Route) *Route {
	r.Children = append(r.Children, children...)
	return r
}

// Outlet appends children to the named outlet group.
func (r *Route) Outlet(name string, children ...*Route) *Route {
	if r.Outlets == nil {
		r.Outlets = make(map[string][]*Route)
	}
	r.Outlets[name] = append(r.Outlets[name], children...)
	return r
}

// Named sets the inspection label.
func (r *Route) Named(name string) *Route {
	r.Name = name
	return r
}
