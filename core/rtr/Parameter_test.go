package rtr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rnav/core/rtr"
)

func TestMergeChildWins(t *testing.T) {
	parent := rtr.Params{{Key: "wid", Value: "abc"}}
	child := rtr.Params{{Key: "wid", Value: "zzz"}, {Key: "pid", Value: "123"}}

	merged := rtr.Merge(parent, child)
	want := rtr.Params{{Key: "wid", Value: "zzz"}, {Key: "pid", Value: "123"}}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merge (-want +got):\n%s", diff)
	}

	// Inputs are untouched.
	assert.Equal(t, parent.Value("wid"), "abc")
	assert.Equal(t, len(parent), 1)
}

func TestMergeKeepsParentOrder(t *testing.T) {
	parent := rtr.Params{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	merged := rtr.Merge(parent, rtr.Params{{Key: "c", Value: "3"}, {Key: "a", Value: "9"}})

	if diff := cmp.Diff([]string{"a", "b", "c"}, merged.Keys()); diff != "" {
		t.Error(diff)
	}
	assert.Equal(t, merged.String(), "{a=9, b=2, c=3}")

	same := rtr.Merge(parent, nil)
	assert.True(t, same.Equal(parent))
	same[0].Value = "changed"
	assert.Equal(t, parent.Value("a"), "1")
}

func TestParamsAccessors(t *testing.T) {
	p := rtr.Params{}.With("id", "42").With("ratio", "0.5").With("draft", "true").With("name", "x")

	n, ok := p.Int("id")
	assert.True(t, ok)
	assert.Equal(t, n, 42)

	f, ok := p.Float("ratio")
	assert.True(t, ok)
	assert.Equal(t, f, 0.5)

	b, ok := p.Bool("draft")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = p.Int("name")
	assert.False(t, ok)

	_, ok = p.Int("missing")
	assert.False(t, ok)

	assert.True(t, p.Has("name"))
	assert.False(t, p.Has("nope"))
	assert.Equal(t, p.Map()["id"], "42")

	overwritten := p.With("id", "7")
	assert.Equal(t, overwritten.Value("id"), "7")
	assert.Equal(t, p.Value("id"), "42")
	assert.Equal(t, overwritten.Keys()[0], "id")
}
