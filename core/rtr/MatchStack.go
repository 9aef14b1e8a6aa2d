package rtr

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MatchEntry is one level of a resolved navigation path.
type MatchEntry struct {
	Node   *Node
	Params Params // parameters accumulated from the root down to this entry
	Depth  int
	Path   string // normalized path consumed up to and including this entry
	rest   string // normalized path left after this entry
}

// Rest returns the part of the navigation path not consumed by this entry or
// its ancestors.
func (e MatchEntry) Rest() string { return e.rest }

func (e MatchEntry) equal(other MatchEntry) bool {
	return e.Node == other.Node &&
		e.Depth == other.Depth &&
		e.Path == other.Path &&
		e.Params.Equal(other.Params)
}

// MatchStack is the ordered list of routes from the root to the deepest
// matched route. Entry i always sits at depth i.
//
// A stack is immutable once the resolver returns it, and all accessors are
// safe on a nil stack, which behaves like an empty one.
type MatchStack struct {
	entries []MatchEntry
}

func newMatchStack(entries []MatchEntry) *MatchStack {
	return &MatchStack{entries: entries}
}

// AtDepth returns the entry at depth.
func (s *MatchStack) AtDepth(depth int) (MatchEntry, bool) {
	if s == nil || depth < 0 || depth >= len(s.entries) {
		return MatchEntry{}, false
	}
	return s.entries[depth], true
}

func (s *MatchStack) Root() (MatchEntry, bool) {
	return s.AtDepth(0)
}

// Leaf returns the deepest entry.
func (s *MatchStack) Leaf() (MatchEntry, bool) {
	return s.AtDepth(s.Len() - 1)
}

func (s *MatchStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

func (s *MatchStack) IsEmpty() bool {
	return s.Len() == 0
}

// MaxDepth returns the depth of the leaf, or false for an empty stack.
func (s *MatchStack) MaxDepth() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.Len() - 1, true
}

func (s *MatchStack) HasDepth(depth int) bool {
	return depth >= 0 && depth < s.Len()
}

// Params returns the parameters accumulated by the leaf.
func (s *MatchStack) Params() Params {
	leaf, ok := s.Leaf()
	if !ok {
		return nil
	}
	return leaf.Params
}

// Entries returns a copy of the entries, root first.
func (s *MatchStack) Entries() []MatchEntry {
	if s.IsEmpty() {
		return nil
	}
	out := make([]MatchEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Patterns returns the route pattern of each entry, root first.
func (s *MatchStack) Patterns() []string {
	patterns := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		patterns = append(patterns, s.entries[i].Node.Pattern())
	}
	return patterns
}

// Equal reports whether two stacks hold the same routes with the same
// parameters at the same depths.
func (s *MatchStack) Equal(other *MatchStack) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if !s.entries[i].equal(other.entries[i]) {
			return false
		}
	}
	return true
}

// Fingerprint hashes the routes, depths, paths and parameters of the stack.
// Equal stacks always share a fingerprint, which makes it a cheap change
// detector for views deciding whether to re-render.
func (s *MatchStack) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [20]byte

	for i := 0; i < s.Len(); i++ {
		e := &s.entries[i]
		_, _ = d.Write(strconv.AppendInt(buf[:0], int64(e.Node.id), 10))
		_, _ = d.WriteString("@")
		_, _ = d.Write(strconv.AppendInt(buf[:0], int64(e.Depth), 10))
		_, _ = d.WriteString("|")
		_, _ = d.WriteString(e.Path)
		for _, p := range e.Params {
			_, _ = d.WriteString("|")
			_, _ = d.WriteString(p.Key)
			_, _ = d.WriteString("=")
			_, _ = d.WriteString(p.Value)
		}
		_, _ = d.WriteString("\n")
	}

	return d.Sum64()
}

// String renders the stack one entry per line, for debugging:
//
//	[0] / (shell)
//	[1] /users/:id {id=42}
func (s *MatchStack) String() string {
	if s.IsEmpty() {
		return "(empty)"
	}

	var sb strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("  ", e.Depth))
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(e.Depth))
		sb.WriteString("] ")
		sb.WriteString(e.Node.Pattern())
		if e.Node.name != "" {
			sb.WriteString(" (")
			sb.WriteString(e.Node.name)
			sb.WriteByte(')')
		}
		if len(e.Params) > 0 {
			sb.WriteByte(' ')
			sb.WriteString(e.Params.String())
		}
	}
	return sb.String()
}
