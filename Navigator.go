package rnav

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/rnav/core/cache"
	"github.com/rohanthewiz/rnav/core/rtr"
	"github.com/sirupsen/logrus"
)

// Navigator owns the route table and the current navigation.
//
// Navigate resolves a target and makes the result current; the last call wins.
// Views read the current resolution through View and never see a stack that is
// still being built, since every navigation swaps in a complete one.
type Navigator struct {
	router  *rtr.Router
	current atomic.Pointer[navigation]
	cursor  rtr.DepthCursor
	log     *logrus.Entry

	mu        sync.Mutex
	defs      []*rtr.Route // registered definitions
	staged    []*rtr.Route // groups awaiting Commit
	observers []Observer
}

// navigation is one completed Navigate call.
type navigation struct {
	target string
	query  Query
	res    rtr.Resolution
}

// Options configures a Navigator.
type Options struct {
	// CacheCapacity bounds the resolution cache.
	// 0 selects the default (100), a negative value disables caching.
	CacheCapacity int

	// Verbose logs every resolution step at Debug level.
	// It raises the level of Logger when one is given. Without a Logger the
	// navigator logs at Debug level to the standard logger's output, and the
	// standard logger itself keeps its level.
	Verbose bool

	// Logger defaults to the standard logrus logger.
	Logger *logrus.Logger

	// Observers are notified after each navigation.
	Observers []Observer
}

// NewNavigator creates a navigator with an empty route table.
func NewNavigator(opts ...Options) *Navigator {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	logger := opt.Logger
	switch {
	case logger != nil && opt.Verbose:
		logger.SetLevel(logrus.DebugLevel)
	case logger == nil && opt.Verbose:
		// A private logger, so the standard logger's level is left alone
		std := logrus.StandardLogger()
		logger = &logrus.Logger{
			Out:       std.Out,
			Formatter: std.Formatter,
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.DebugLevel,
			ExitFunc:  std.ExitFunc,
		}
	case logger == nil:
		logger = logrus.StandardLogger()
	}

	n := &Navigator{
		router:    rtr.New(rtr.Options{CacheCapacity: opt.CacheCapacity, Logger: logger}),
		log:       logger.WithField("component", "navigator"),
		observers: slices.Clone(opt.Observers),
	}
	n.current.Store(&navigation{res: rtr.Resolve(nil, "")})
	return n
}

// Register adds root routes to the route table and installs the rebuilt tree.
// When validation fails nothing changes and a *rtr.ConstructionError is returned.
func (n *Navigator) Register(routes ...*rtr.Route) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.register(routes)
}

// register must be called with mu held.
func (n *Navigator) register(routes []*rtr.Route) error {
	defs := append(slices.Clone(n.defs), routes...)

	tree, err := rtr.Build(defs...)
	if err != nil {
		n.log.WithError(err).Error("route registration rejected")
		return err
	}

	n.defs = defs
	n.router.Install(tree)
	n.log.WithField("routes", tree.Len()).Info("routes registered")
	return nil
}

// Install replaces the whole route table with a tree built elsewhere,
// for instance by routecfg. Routes registered afterwards start a new table
// rather than extending the installed tree.
func (n *Navigator) Install(tree *rtr.Tree) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.defs = nil
	n.router.Install(tree)
}

// Commit registers every group created with Group since the last Commit.
func (n *Navigator) Commit() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.staged) == 0 {
		return nil
	}
	if err := n.register(n.staged); err != nil {
		return err
	}
	n.staged = nil
	return nil
}

// Use adds observers notified after each navigation.
func (n *Navigator) Use(observers ...Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, observers...)
}

// Navigate resolves target ("/path?query#fragment") and makes the result the
// current navigation. The resolution is returned whatever its status; callers
// decide how to present an unmatched path.
func (n *Navigator) Navigate(target string) rtr.Resolution {
	path, rawQuery := SplitTarget(target)

	start := time.Now()
	res := n.router.Resolve(path)
	elapsed := time.Since(start)

	next := &navigation{target: target, query: ParseQuery(rawQuery), res: res}
	prev := n.current.Swap(next)

	n.mu.Lock()
	observers := slices.Clone(n.observers)
	n.mu.Unlock()

	ev := NavigationEvent{
		Target:  target,
		Query:   next.query,
		From:    prev.res,
		To:      res,
		Elapsed: elapsed,
		Log:     n.log,
	}
	for _, observe := range observers {
		observe(ev)
	}

	return res
}

// Resolve resolves target without changing the current navigation.
func (n *Navigator) Resolve(target string) rtr.Resolution {
	path, _ := SplitTarget(target)
	return n.router.Resolve(path)
}

// ResolveOutlet resolves a named outlet of the current navigation at depth.
func (n *Navigator) ResolveOutlet(depth int, outlet string) rtr.Resolution {
	return n.router.ResolveOutlet(n.current.Load().res, depth, outlet)
}

// Current returns the current resolution.
func (n *Navigator) Current() rtr.Resolution {
	return n.current.Load().res
}

// CurrentTarget returns the target of the last navigation.
func (n *Navigator) CurrentTarget() string {
	return n.current.Load().target
}

// Query returns the query of the last navigation.
func (n *Navigator) Query() Query {
	return n.current.Load().query
}

// Params returns the parameters of the current leaf route.
func (n *Navigator) Params() rtr.Params {
	return n.Current().Params()
}

// View returns the root render Context of the current navigation.
func (n *Navigator) View() *Context {
	cur := n.current.Load()
	return newContext(n, cur.res, cur.query)
}

// Cursor returns the navigator's depth cursor, for views that cannot receive
// a Context. It is reset by the caller at the start of each render pass.
func (n *Navigator) Cursor() *rtr.DepthCursor {
	return &n.cursor
}

// Tree returns the installed route tree.
func (n *Navigator) Tree() *rtr.Tree {
	return n.router.Tree()
}

// ListRoutes lists the installed routes.
func (n *Navigator) ListRoutes() []rtr.RouteList {
	return n.router.ListRoutes()
}

func (n *Navigator) CacheStats() cache.Stats {
	return n.router.CacheStats()
}

// InvalidateCache drops every cached resolution.
func (n *Navigator) InvalidateCache() {
	n.router.InvalidateCache()
}

// Collector returns a Prometheus collector for the resolution cache.
func (n *Navigator) Collector() *cache.Collector {
	return cache.NewCollector(consts.MetricsNamespace, n.router.Cache())
}
