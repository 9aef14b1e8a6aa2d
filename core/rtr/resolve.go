package rtr

import (
	"slices"
	"strings"

	"github.com/rohanthewiz/rnav/consts"
	"github.com/sirupsen/logrus"
)

// Resolve resolves path against tree without caching or logging.
//
// Matching walks the tree one level at a time. At each level the literal
// candidates for the next path segment are tried first, then the parameter
// candidates, each group in declaration order. When a candidate matches but
// nothing below it can consume the rest of the path, the resolver backtracks
// and tries the next sibling. If no candidate matches completely, the deepest
// partial stack seen is returned with StatusUnmatched.
func Resolve(tree *Tree, path string) Resolution {
	return resolvePath(tree, path, nil)
}

// ResolveOutlet resolves the named outlet of the entry at depth in parent.
//
// The returned stack repeats the parent's entries up to depth, followed by the
// entries matched from the outlet's children against the rest of the path.
// When none of the outlet's children matches the rest of the path, its index
// route, if any, renders as the outlet's default.
func ResolveOutlet(parent Resolution, depth int, outlet string) Resolution {
	return resolveOutlet(parent, depth, outlet, nil)
}

func resolvePath(tree *Tree, path string, log *logrus.Entry) Resolution {
	path = Normalize(path)
	res := Resolution{Path: path, FailedDepth: -1}

	if tree == nil {
		res.Stack = newMatchStack(nil)
		res.FailedDepth = 0
		return res
	}

	rs := newResolver(log)
	if rs.roots(&tree.roots, path) == flowStop {
		res.Stack = newMatchStack(rs.entries)
		res.Status = statusOf(rs.entries)
	} else {
		res.Stack = newMatchStack(rs.best)
		res.FailedDepth = rs.failedDepth
	}

	if rs.debug {
		rs.log.WithFields(logrus.Fields{
			"path":   consts.StrSlash + path,
			"status": res.Status.String(),
			"depth":  res.Stack.Len(),
		}).Debug("path resolved")
	}
	return res
}

func resolveOutlet(parent Resolution, depth int, outlet string, log *logrus.Entry) Resolution {
	res := Resolution{Path: parent.Path, Outlet: outlet, FailedDepth: -1}

	entry, ok := parent.Stack.AtDepth(depth)
	if !ok {
		res.Stack = newMatchStack(nil)
		res.Status = StatusOutletMissing
		return res
	}

	g, ok := entry.Node.outlets[outlet]
	if !ok {
		if log != nil {
			log.WithFields(logrus.Fields{
				"outlet":    outlet,
				"route":     entry.Node.Pattern(),
				"available": strings.Join(entry.Node.names, ","),
			}).Warn("named outlet not declared by route")
		}
		res.Stack = newMatchStack(nil)
		res.Status = StatusOutletMissing
		return res
	}

	rs := newResolver(log)
	rs.entries = append(rs.entries, parent.Stack.entries[:depth+1]...)

	if rs.descend(g, entry.rest, entry.Path, entry.Params) != flowStop {
		if g.index == nil {
			res.Stack = newMatchStack(rs.best)
			res.FailedDepth = rs.failedDepth
			return res
		}
		rs.entries = rs.entries[:depth+1]
		rs.push(g.index, entry.Params, entry.Path, entry.rest)
	}

	res.Stack = newMatchStack(rs.entries)
	if len(rs.entries) == depth+1 {
		res.Status = StatusLayout // outlet has nothing to render
	} else {
		res.Status = statusOf(rs.entries)
	}
	return res
}

// statusOf classifies a complete stack.
func statusOf(entries []MatchEntry) Status {
	leaf := entries[len(entries)-1].Node
	if leaf.IsLayout() && leaf.children.index == nil {
		return StatusLayout
	}
	return StatusMatched
}

// resolver holds the working state of one resolution.
type resolver struct {
	entries     []MatchEntry
	best        []MatchEntry // deepest partial stack seen so far
	failedDepth int
	log         *logrus.Entry
	debug       bool
}

func newResolver(log *logrus.Entry) *resolver {
	return &resolver{
		entries:     make([]MatchEntry, 0, 8),
		failedDepth: -1,
		log:         log,
		debug:       log != nil && log.Logger.IsLevelEnabled(logrus.DebugLevel),
	}
}

func (rs *resolver) push(n *Node, params Params, consumed, rest string) {
	rs.entries = append(rs.entries, MatchEntry{
		Node:   n,
		Params: params,
		Depth:  len(rs.entries),
		Path:   consumed,
		rest:   rest,
	})
}

// fail records a dead end at depth. Only the deepest dead end is kept; on a
// tie the first one seen wins.
func (rs *resolver) fail(depth int) {
	if depth > rs.failedDepth {
		rs.failedDepth = depth
		rs.best = slices.Clone(rs.entries[:depth])
	}
}

// roots resolves the top level. Routes with a fragment are tried first, then
// the root layout (the root with an empty fragment), which consumes nothing.
func (rs *resolver) roots(g *group, path string) flow {
	if path != "" && rs.candidates(g, path, "", nil) == flowStop {
		return flowStop
	}

	if layout := g.index; layout != nil {
		rs.push(layout, nil, "", path)
		if rs.debug {
			rs.trace(layout, path)
		}

		switch {
		case path == "":
			if idx := layout.children.index; idx != nil {
				rs.push(idx, nil, "", "")
			}
			return flowStop
		case layout.children.empty():
			rs.fail(1)
		case rs.descend(&layout.children, path, "", nil) == flowStop:
			return flowStop
		}
		rs.entries = rs.entries[:0]
	}

	rs.fail(0)
	return flowNext
}

// descend matches remaining against the children in g, one level below the
// current top of the stack.
func (rs *resolver) descend(g *group, remaining, consumed string, params Params) flow {
	depth := len(rs.entries)

	if remaining == "" {
		if g.index != nil {
			rs.push(g.index, params, consumed, "")
		}
		return flowStop
	}

	if rs.candidates(g, remaining, consumed, params) == flowStop {
		return flowStop
	}

	rs.fail(depth)
	return flowNext
}

// candidates tries the literal candidates for the head of remaining and then
// the parameter candidates, popping back after each failure.
func (rs *resolver) candidates(g *group, remaining, consumed string, params Params) flow {
	depth := len(rs.entries)
	first, _ := SplitFirst(remaining)

	for _, n := range g.literal.lookup(first) {
		if rs.try(n, remaining, consumed, params) == flowStop {
			return flowStop
		}
		rs.entries = rs.entries[:depth]
	}

	for _, n := range g.params {
		if rs.try(n, remaining, consumed, params) == flowStop {
			return flowStop
		}
		rs.entries = rs.entries[:depth]
	}

	return flowNext
}

// try matches one candidate and, when it consumes only part of the path,
// continues into its default children.
func (rs *resolver) try(n *Node, remaining, consumed string, params Params) flow {
	rest, path, bound, ok := n.match(remaining, consumed)
	if !ok {
		return flowNext
	}

	merged := rs.merge(n, params, bound)
	rs.push(n, merged, path, rest)
	if rs.debug {
		rs.trace(n, rest)
	}

	if rest == "" {
		// Index routes are terminal: an index child is never descended into.
		if idx := n.children.index; idx != nil {
			rs.push(idx, merged, path, "")
		}
		return flowStop
	}

	if n.children.empty() {
		rs.fail(len(rs.entries))
		return flowNext
	}

	return rs.descend(&n.children, rest, path, merged)
}

// merge applies child-wins precedence to the parameters bound by n.
func (rs *resolver) merge(n *Node, parent, bound Params) Params {
	if len(bound) == 0 {
		return parent
	}

	if rs.debug {
		for _, p := range bound {
			if prev, ok := parent.Get(p.Key); ok {
				rs.log.WithFields(logrus.Fields{
					"param":  p.Key,
					"parent": prev,
					"child":  p.Value,
					"route":  n.Pattern(),
				}).Debug("parameter shadowed by child route")
			}
		}
	}

	return Merge(parent, bound)
}

func (rs *resolver) trace(n *Node, rest string) {
	rs.log.WithFields(logrus.Fields{
		"depth": len(rs.entries) - 1,
		"route": n.Pattern(),
		"rest":  rest,
	}).Debug("route matched")
}
