package rtr

// Status classifies the outcome of a resolution.
type Status uint8

const (
	// StatusUnmatched means no route matched the whole path. The stack holds
	// the deepest partial match, which may be empty.
	StatusUnmatched Status = iota

	// StatusMatched means the whole path was consumed and the leaf renders.
	StatusMatched

	// StatusLayout means the whole path was consumed but the leaf is a layout
	// with default children and no index route: its outlet has no active child.
	StatusLayout

	// StatusOutletMissing means a named outlet was requested that the parent
	// route does not declare.
	StatusOutletMissing
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusLayout:
		return "layout"
	case StatusOutletMissing:
		return "outlet-missing"
	default:
		return "unmatched"
	}
}

// Resolution is the result of resolving a path or a named outlet.
type Resolution struct {
	Stack  *MatchStack
	Status Status
	Path   string // the normalized path that was resolved
	Outlet string // the named outlet resolved, "" for the default hierarchy

	// FailedDepth is the depth at which matching gave up, -1 unless
	// Status is StatusUnmatched.
	FailedDepth int
}

// Matched reports whether the whole path was consumed, as a renderable leaf or
// as a layout without an active child.
func (r Resolution) Matched() bool {
	return r.Status == StatusMatched || r.Status == StatusLayout
}

// Params returns the parameters accumulated by the deepest entry.
func (r Resolution) Params() Params {
	return r.Stack.Params()
}

// Leaf returns the deepest entry of the stack.
func (r Resolution) Leaf() (MatchEntry, bool) {
	return r.Stack.Leaf()
}
