package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rnav/core/rtr"
)

func TestMatchStackAccessors(t *testing.T) {
	res := rtr.Resolve(dashboardTree(t), "/dashboard/settings")
	s := res.Stack

	assert.Equal(t, s.Len(), 3)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.HasDepth(2))
	assert.False(t, s.HasDepth(3))
	assert.False(t, s.HasDepth(-1))

	maxDepth, ok := s.MaxDepth()
	assert.True(t, ok)
	assert.Equal(t, maxDepth, 2)

	root, ok := s.Root()
	assert.True(t, ok)
	assert.Equal(t, root.Node.Content(), any("root"))

	entry, ok := s.AtDepth(1)
	assert.True(t, ok)
	assert.Equal(t, entry.Path, "dashboard")
	assert.Equal(t, entry.Rest(), "settings")

	_, ok = s.AtDepth(3)
	assert.False(t, ok)

	// Entries hands out a copy.
	entries := s.Entries()
	entries[0] = rtr.MatchEntry{}
	root, _ = s.Root()
	assert.NotNil(t, root.Node)

	assert.Equal(t, s.Patterns()[2], "/dashboard/settings")
	assert.Contains(t, s.String(), "[2] /dashboard/settings")
}

func TestMatchStackNilSafe(t *testing.T) {
	var s *rtr.MatchStack

	assert.Equal(t, s.Len(), 0)
	assert.True(t, s.IsEmpty())
	_, ok := s.Leaf()
	assert.False(t, ok)
	_, ok = s.MaxDepth()
	assert.False(t, ok)
	assert.Equal(t, len(s.Params()), 0)
	assert.Equal(t, s.String(), "(empty)")
	assert.True(t, s.Equal(nil))
}

func TestMatchStackFingerprintTracksParams(t *testing.T) {
	tree, err := rtr.Build(rtr.NewRoute("/users/:id", "user"))
	assert.Nil(t, err)

	a := rtr.Resolve(tree, "/users/1").Stack
	b := rtr.Resolve(tree, "/users/2").Stack
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Fingerprint(), rtr.Resolve(tree, "users/1/").Stack.Fingerprint())
}
