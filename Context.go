package rnav

import (
	"sync"

	"github.com/rohanthewiz/rnav/core/rtr"
)

// Context is what a view receives while rendering one level of the current
// navigation.
//
// It carries its depth explicitly: the root view gets the Context for depth 0
// from Navigator.View and hands Outlet() to the view that renders its child.
// Nothing global is involved, so sibling outlets and concurrent renders never
// interfere with each other.
type Context struct {
	nav   *Navigator
	res   rtr.Resolution
	query Query
	depth int
	data  *contextData // shared by every Context of one render pass
}

// contextData holds values set during one render pass.
type contextData struct {
	mu     sync.RWMutex
	values map[string]any
}

func newContext(nav *Navigator, res rtr.Resolution, query Query) *Context {
	return &Context{nav: nav, res: res, query: query, data: &contextData{}}
}

// at returns a Context for another level of the same pass.
func (ctx *Context) at(res rtr.Resolution, depth int) *Context {
	return &Context{nav: ctx.nav, res: res, query: ctx.query, depth: depth, data: ctx.data}
}

// Depth returns the level this Context renders.
func (ctx *Context) Depth() int {
	return ctx.depth
}

// Entry returns the match stack entry for this level.
func (ctx *Context) Entry() (rtr.MatchEntry, bool) {
	return ctx.res.Stack.AtDepth(ctx.depth)
}

// Content returns the content handle of this level's route, nil when the
// level has no entry or the route is a pure layout.
func (ctx *Context) Content() any {
	entry, ok := ctx.Entry()
	if !ok {
		return nil
	}
	return entry.Node.Content()
}

// Params returns the parameters accumulated down to this level.
func (ctx *Context) Params() rtr.Params {
	entry, ok := ctx.Entry()
	if !ok {
		return nil
	}
	return entry.Params
}

// Param returns one parameter of this level, "" when unbound.
func (ctx *Context) Param(key string) string {
	return ctx.Params().Value(key)
}

// Query returns the query of the navigation target.
func (ctx *Context) Query() Query {
	return ctx.query
}

// Resolution returns the resolution this Context walks.
func (ctx *Context) Resolution() rtr.Resolution {
	return ctx.res
}

// Outlet returns the Context for the default child of this level.
// It returns false when there is no child to render, as for a leaf or a
// layout without an active child.
func (ctx *Context) Outlet() (*Context, bool) {
	if !ctx.res.Stack.HasDepth(ctx.depth + 1) {
		return nil, false
	}
	return ctx.at(ctx.res, ctx.depth+1), true
}

// NamedOutlet resolves the named outlet of this level and returns the Context
// for its child. It returns false when the route declares no such outlet or
// nothing in it matches.
func (ctx *Context) NamedOutlet(name string) (*Context, bool) {
	if ctx.nav == nil {
		return nil, false
	}

	res := ctx.nav.router.ResolveOutlet(ctx.res, ctx.depth, name)
	if !res.Stack.HasDepth(ctx.depth + 1) {
		return nil, false
	}
	return ctx.at(res, ctx.depth+1), true
}

// Set stores a value for the rest of the render pass.
// Layouts use it to hand data down to the views in their outlets.
func (ctx *Context) Set(key string, value any) {
	ctx.data.mu.Lock()
	defer ctx.data.mu.Unlock()

	if ctx.data.values == nil {
		ctx.data.values = make(map[string]any)
	}
	ctx.data.values[key] = value
}

// Get returns a stored value, nil when absent.
func (ctx *Context) Get(key string) any {
	ctx.data.mu.RLock()
	defer ctx.data.mu.RUnlock()
	return ctx.data.values[key]
}

func (ctx *Context) Has(key string) bool {
	ctx.data.mu.RLock()
	defer ctx.data.mu.RUnlock()
	_, ok := ctx.data.values[key]
	return ok
}

func (ctx *Context) Delete(key string) {
	ctx.data.mu.Lock()
	defer ctx.data.mu.Unlock()
	delete(ctx.data.values, key)
}
