package rtr

import (
	"sync/atomic"

	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/rnav/core/cache"
	"github.com/sirupsen/logrus"
)

// Router resolves navigation paths against an installed Tree and caches the
// results.
//
// Resolution is safe for concurrent use. Installing a new tree swaps it in
// atomically and invalidates the cache, so a resolution sees either the old
// tree or the new one, never a mix.
type Router struct {
	tree  atomic.Pointer[Tree]
	cache *cache.Cache[Resolution]
	log   *logrus.Entry
}

// Options configures a Router.
type Options struct {
	// CacheCapacity bounds the resolution cache.
	// 0 selects consts.DefaultCacheCapacity, a negative value disables caching.
	CacheCapacity int

	// Logger receives resolver diagnostics. Defaults to the standard logrus logger.
	Logger *logrus.Logger
}

// New creates a router with an empty tree.
func New(opts ...Options) *Router {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := &Router{log: logger.WithField("component", "router")}
	r.tree.Store(&Tree{})

	capacity := opt.CacheCapacity
	if capacity == 0 {
		capacity = consts.DefaultCacheCapacity
	}
	if capacity > 0 {
		c, err := cache.New[Resolution](capacity)
		if err != nil {
			r.log.WithError(err).Warn("resolution cache disabled")
		} else {
			r.cache = c
		}
	}

	return r
}

// Install replaces the route tree and invalidates every cached resolution.
func (r *Router) Install(tree *Tree) {
	if tree == nil {
		tree = &Tree{}
	}
	r.tree.Store(tree)
	r.cache.InvalidateAll()

	r.log.WithFields(logrus.Fields{
		"routes": tree.Len(),
		"depth":  tree.Depth(),
	}).Debug("route tree installed")
}

// Build compiles routes and installs the result.
// On error the current tree stays in place.
func (r *Router) Build(routes ...*Route) error {
	tree, err := Build(routes...)
	if err != nil {
		r.log.WithError(err).Warn("route tree rejected")
		return err
	}
	r.Install(tree)
	return nil
}

// Tree returns the installed tree.
func (r *Router) Tree() *Tree {
	return r.tree.Load()
}

// Resolve resolves path against the installed tree.
func (r *Router) Resolve(path string) Resolution {
	path = Normalize(path)
	if r.cache == nil {
		return resolvePath(r.tree.Load(), path, r.log)
	}

	return r.cache.GetOrResolve(cache.Key{CurrentPath: path}, func() Resolution {
		return resolvePath(r.tree.Load(), path, r.log)
	})
}

// ResolveOutlet resolves the named outlet of the entry at depth in parent.
// See the package level ResolveOutlet for the shape of the result.
func (r *Router) ResolveOutlet(parent Resolution, depth int, outlet string) Resolution {
	entry, ok := parent.Stack.AtDepth(depth)
	if !ok || r.cache == nil || !r.owns(entry.Node) {
		return resolveOutlet(parent, depth, outlet, r.log)
	}

	key := cache.Key{
		ParentID:    entry.Node.id,
		ParentPath:  entry.Path,
		CurrentPath: parent.Path,
		Outlet:      outlet,
		HasOutlet:   true,
	}
	return r.cache.GetOrResolve(key, func() Resolution {
		return resolveOutlet(parent, depth, outlet, r.log)
	})
}

// owns reports whether n belongs to the installed tree. Stacks resolved
// against a replaced tree are resolved again rather than cached.
func (r *Router) owns(n *Node) bool {
	got, ok := r.tree.Load().Node(n.id)
	return ok && got == n
}

// ListRoutes lists the installed routes.
func (r *Router) ListRoutes() []RouteList {
	return r.tree.Load().ListRoutes()
}

// CacheStats returns a snapshot of the cache counters.
// A router without a cache reports zeros.
func (r *Router) CacheStats() cache.Stats {
	return r.cache.Stats()
}

// ResetCacheStats zeroes the cache counters without dropping entries.
func (r *Router) ResetCacheStats() {
	r.cache.ResetStats()
}

// InvalidateCache drops every cached resolution.
func (r *Router) InvalidateCache() {
	r.cache.InvalidateAll()
}

// Cache exposes the resolution cache, nil when caching is disabled.
func (r *Router) Cache() *cache.Cache[Resolution] {
	return r.cache
}
