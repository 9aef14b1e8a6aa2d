package rtr_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/rnav/core/rtr"
)

func assertConstructionError(t *testing.T, err error, kind error) *rtr.ConstructionError {
	t.Helper()

	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, kind))

	var ce *rtr.ConstructionError
	assert.True(t, errors.As(err, &ce))
	return ce
}

func TestBuildRejectsMultipleIndexRoutes(t *testing.T) {
	_, err := rtr.Build(
		rtr.NewRoute("/", nil).Child(
			rtr.NewRoute("dashboard", nil).Child(
				rtr.Index("a"),
				rtr.NewRoute("settings", nil),
				rtr.NewRoute("/", "b"), // normalizes to an index too
			),
		),
	)

	// "/" as a child is absolute, which is reported first.
	assertConstructionError(t, err, rtr.ErrAbsoluteChildFragment)

	_, err = rtr.Build(
		rtr.NewRoute("/", nil).Child(
			rtr.NewRoute("dashboard", nil).Child(rtr.Index("a"), rtr.Index("b")),
		),
	)
	ce := assertConstructionError(t, err, rtr.ErrMultipleIndexRoutes)
	assert.Equal(t, ce.Route, "/dashboard")
	assert.Contains(t, err.Error(), "/dashboard")
}

func TestBuildRejectsMultipleRootLayouts(t *testing.T) {
	_, err := rtr.Build(rtr.NewRoute("/", "a"), rtr.NewRoute("", "b"))
	assertConstructionError(t, err, rtr.ErrMultipleIndexRoutes)
}

func TestBuildRejectsMultipleIndexRoutesInOutlet(t *testing.T) {
	_, err := rtr.Build(
		rtr.NewRoute("/dashboard", nil).
			Child(rtr.Index("main")).
			Outlet("sidebar", rtr.Index("a"), rtr.Index("b")),
	)
	ce := assertConstructionError(t, err, rtr.ErrMultipleIndexRoutes)
	assert.Equal(t, ce.Outlet, "sidebar")
}

func TestBuildRejectsAbsoluteChild(t *testing.T) {
	_, err := rtr.Build(
		rtr.NewRoute("/dashboard", nil).Child(rtr.NewRoute("/settings", nil)),
	)
	ce := assertConstructionError(t, err, rtr.ErrAbsoluteChildFragment)
	assert.Equal(t, ce.Route, "/dashboard/settings")

	// Absolute roots are fine.
	_, err = rtr.Build(rtr.NewRoute("/dashboard", nil))
	assert.Nil(t, err)
}

func TestBuildRejectsEmptyOutletName(t *testing.T) {
	_, err := rtr.Build(
		rtr.NewRoute("/dashboard", nil).Outlet("", rtr.NewRoute("nav", nil)),
	)
	assertConstructionError(t, err, rtr.ErrEmptyOutletName)
}

func TestBuildRejectsUnnamedParams(t *testing.T) {
	for _, fragment := range []string{":", ":{uuid}", "users/:<i32>"} {
		_, err := rtr.Build(rtr.NewRoute("/items", nil).Child(rtr.NewRoute(fragment, nil)))
		ce := assertConstructionError(t, err, rtr.ErrInvalidParam)
		assert.NotEqual(t, ce.Detail, "")
	}
}

func TestBuildRejectsNilRoute(t *testing.T) {
	_, err := rtr.Build(rtr.NewRoute("/", nil).Child(nil))
	assertConstructionError(t, err, rtr.ErrNilRoute)
}

// chain returns a root and depth-1 nested descendants.
func chain(depth int) *rtr.Route {
	root := rtr.NewRoute("/", nil)
	parent := root
	for i := 1; i < depth; i++ {
		child := rtr.NewRoute("l"+strconv.Itoa(i), nil)
		parent.Child(child)
		parent = child
	}
	return root
}

func TestBuildEnforcesMaxDepth(t *testing.T) {
	tree, err := rtr.Build(chain(consts.MaxDepth))
	assert.Nil(t, err)
	assert.Equal(t, tree.Depth(), consts.MaxDepth-1)

	_, err = rtr.Build(chain(consts.MaxDepth + 1))
	assertConstructionError(t, err, rtr.ErrMaxDepthExceeded)
}

func TestBuildDetectsCycles(t *testing.T) {
	self := rtr.NewRoute("loop", nil)
	self.Child(self)
	_, err := rtr.Build(rtr.NewRoute("/", nil).Child(self))
	assertConstructionError(t, err, rtr.ErrRouteCycle)

	a := rtr.NewRoute("a", nil)
	b := rtr.NewRoute("b", nil)
	a.Child(b)
	b.Outlet("side", a)
	_, err = rtr.Build(rtr.NewRoute("/", nil).Child(a))
	ce := assertConstructionError(t, err, rtr.ErrRouteCycle)
	assert.Equal(t, ce.Outlet, "side")
}

func TestBuildAllowsSharedDefinitions(t *testing.T) {
	shared := rtr.NewRoute("help", "help")
	tree, err := rtr.Build(
		rtr.NewRoute("/", nil).Child(
			rtr.NewRoute("users", nil).Child(shared),
			rtr.NewRoute("admin", nil).Child(shared),
		),
	)
	assert.Nil(t, err)
	assert.Equal(t, tree.Len(), 5)
	assert.True(t, rtr.Resolve(tree, "/users/help").Matched())
	assert.True(t, rtr.Resolve(tree, "/admin/help").Matched())
}

func TestBuildCopiesDefinitions(t *testing.T) {
	dashboard := rtr.NewRoute("dashboard", nil)
	root := rtr.NewRoute("/", nil).Child(dashboard)

	tree, err := rtr.Build(root)
	assert.Nil(t, err)
	assert.Equal(t, tree.Len(), 2)

	dashboard.Child(rtr.NewRoute("late", nil))
	dashboard.Fragment = "renamed"

	assert.Equal(t, tree.Len(), 2)
	assert.True(t, rtr.Resolve(tree, "/dashboard").Matched())
	assert.False(t, rtr.Resolve(tree, "/dashboard/late").Matched())
}

func TestMustBuildPanicsOnInvalidTree(t *testing.T) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("expected panic for an invalid tree")
		}

		err, ok := recovered.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, rtr.ErrEmptyOutletName))
	}()

	rtr.MustBuild(rtr.NewRoute("/", nil).Outlet("", rtr.Index(nil)))
}
