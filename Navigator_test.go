package rnav_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rnav"
	"github.com/rohanthewiz/rnav/core/rtr"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// appNavigator registers a small app:
//
//	/                     shell
//	  -                   home
//	  dashboard           dashboard
//	    -                 overview
//	    settings          settings
//	    @sidebar -        nav
//	    @sidebar recent   recent
//	  users               users
//	    :id               user
func appNavigator(t *testing.T) (*rnav.Navigator, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	n := rnav.NewNavigator(rnav.Options{Logger: logger})

	shell := n.Group("/", "shell").Index("home")
	shell.Group("dashboard", "dashboard").
		Index("overview").
		Route("settings", "settings").
		Outlet("sidebar", rtr.Index("nav"), rtr.NewRoute("recent", "recent"))
	shell.Group("users", "users").
		Route(":id", "user")

	assert.Nil(t, n.Commit())
	hook.Reset()
	return n, hook
}

func contents(res rtr.Resolution) (out []string) {
	for _, entry := range res.Stack.Entries() {
		content, _ := entry.Node.Content().(string)
		out = append(out, content)
	}
	return out
}

func TestNavigate(t *testing.T) {
	n, _ := appNavigator(t)

	res := n.Navigate("/dashboard/settings?tab=2#billing")
	assert.Equal(t, rtr.StatusMatched, res.Status)
	if diff := cmp.Diff([]string{"shell", "dashboard", "settings"}, contents(res)); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "/dashboard/settings?tab=2#billing", n.CurrentTarget())
	assert.Equal(t, "2", n.Query().Get("tab"))
	assert.True(t, n.Current().Stack.Equal(res.Stack))

	res = n.Navigate("/dashboard")
	if diff := cmp.Diff([]string{"shell", "dashboard", "overview"}, contents(res)); diff != "" {
		t.Errorf("index stack mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, n.Query().Len())

	res = n.Navigate("/")
	if diff := cmp.Diff([]string{"shell", "home"}, contents(res)); diff != "" {
		t.Errorf("root stack mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigateParams(t *testing.T) {
	n, _ := appNavigator(t)

	res := n.Navigate("/users/7")
	assert.True(t, res.Matched())
	assert.Equal(t, "7", n.Params().Value("id"))

	id, ok := n.Params().Int("id")
	assert.True(t, ok)
	assert.Equal(t, 7, id)
}

func TestNavigateLayoutAndUnmatched(t *testing.T) {
	n, _ := appNavigator(t)

	res := n.Navigate("/users")
	assert.Equal(t, rtr.StatusLayout, res.Status)
	assert.True(t, res.Matched())

	res = n.Navigate("/nope")
	assert.Equal(t, rtr.StatusUnmatched, res.Status)
	assert.False(t, res.Matched())
	assert.Equal(t, rtr.StatusUnmatched, n.Current().Status)
}

func TestResolveLeavesCurrentAlone(t *testing.T) {
	n, _ := appNavigator(t)
	n.Navigate("/dashboard")

	res := n.Resolve("/users/3?x=1")
	assert.Equal(t, "3", res.Params().Value("id"))
	assert.Equal(t, "/dashboard", n.CurrentTarget())
	assert.Equal(t, "dashboard", n.Current().Path)
}

func TestNavigatorBeforeRegister(t *testing.T) {
	logger, _ := test.NewNullLogger()
	n := rnav.NewNavigator(rnav.Options{CacheCapacity: -1, Logger: logger})

	assert.Equal(t, 0, n.Tree().Len())
	assert.Equal(t, rtr.StatusUnmatched, n.Current().Status)
	assert.True(t, n.Current().Stack.IsEmpty())

	res := n.Navigate("/anything")
	assert.Equal(t, rtr.StatusUnmatched, res.Status)
	assert.Equal(t, 0, res.FailedDepth)
}

func TestRegisterRejected(t *testing.T) {
	n, hook := appNavigator(t)
	before := n.Tree()

	err := n.Register(rtr.Index("a"), rtr.Index("b"))
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, rtr.ErrMultipleIndexRoutes))

	var cerr *rtr.ConstructionError
	assert.True(t, errors.As(err, &cerr))

	assert.True(t, before == n.Tree())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "route registration rejected", hook.LastEntry().Message)

	// The old table still resolves
	assert.True(t, n.Navigate("/dashboard/settings").Matched())
}

func TestRegisterExtendsTable(t *testing.T) {
	n, hook := appNavigator(t)

	assert.Nil(t, n.Register(rtr.NewRoute("help", "help").Child(rtr.NewRoute("faq", "faq"))))
	assert.Equal(t, "routes registered", hook.LastEntry().Message)

	res := n.Navigate("/help/faq")
	if diff := cmp.Diff([]string{"help", "faq"}, contents(res)); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, n.Navigate("/dashboard").Matched())
}

func TestInstallReplacesTable(t *testing.T) {
	n, _ := appNavigator(t)
	n.Navigate("/dashboard")
	n.Navigate("/dashboard")
	invalidations := n.CacheStats().Invalidations

	n.Install(rtr.MustBuild(rtr.NewRoute("about", "about")))
	assert.Equal(t, invalidations+1, n.CacheStats().Invalidations)
	assert.Equal(t, 0, n.CacheStats().Size)

	assert.True(t, n.Navigate("/about").Matched())
	assert.False(t, n.Navigate("/dashboard").Matched())
	assert.Equal(t, 1, len(n.ListRoutes()))
}

func TestNavigateUsesCache(t *testing.T) {
	n, _ := appNavigator(t)

	n.Navigate("/dashboard/settings")
	n.Navigate("/dashboard/settings/?from=menu")

	stats := n.CacheStats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Hits)

	n.InvalidateCache()
	assert.Equal(t, 0, n.CacheStats().Size)
}

func TestObservers(t *testing.T) {
	var events []rnav.NavigationEvent
	n, _ := appNavigator(t)
	n.Use(func(ev rnav.NavigationEvent) {
		events = append(events, ev)
	})

	n.Navigate("/dashboard")
	n.Navigate("/users/9?tab=posts")

	assert.Equal(t, 2, len(events))
	assert.Equal(t, "dashboard", events[1].From.Path)
	assert.Equal(t, "users/9", events[1].To.Path)
	assert.Equal(t, "/users/9?tab=posts", events[1].Target)
	assert.Equal(t, "posts", events[1].Query.Get("tab"))
	assert.NotNil(t, events[1].Log)
}

func TestObserversFromOptions(t *testing.T) {
	calls := 0
	logger, _ := test.NewNullLogger()
	n := rnav.NewNavigator(rnav.Options{
		Logger:    logger,
		Observers: []rnav.Observer{func(rnav.NavigationEvent) { calls++ }},
	})

	n.Navigate("/")
	assert.Equal(t, 1, calls)
}

func TestVerboseKeepsStandardLoggerLevel(t *testing.T) {
	std := logrus.StandardLogger()
	level, out := std.GetLevel(), std.Out
	defer func() {
		std.SetLevel(level)
		std.SetOutput(out)
	}()

	var buf bytes.Buffer
	std.SetLevel(logrus.InfoLevel)
	std.SetOutput(&buf)

	n := rnav.NewNavigator(rnav.Options{Verbose: true})
	assert.Nil(t, n.Register(rtr.NewRoute("about", "about")))
	n.Navigate("/about")

	assert.Equal(t, logrus.InfoLevel, std.GetLevel())
	assert.Contains(t, buf.String(), "route matched")
}

func TestVerboseRaisesGivenLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.WarnLevel)

	n := rnav.NewNavigator(rnav.Options{Logger: logger, Verbose: true})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	assert.Nil(t, n.Register(rtr.NewRoute("about", "about")))
	n.Navigate("/about")

	var traced bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "route matched" {
			traced = true
		}
	}
	assert.True(t, traced)
}

func TestNavigatorCollector(t *testing.T) {
	n, _ := appNavigator(t)
	n.Navigate("/dashboard")

	assert.Equal(t, 6, testutil.CollectAndCount(n.Collector()))
}

func TestListRoutes(t *testing.T) {
	n, _ := appNavigator(t)

	routes := n.ListRoutes()
	assert.Equal(t, n.Tree().Len(), len(routes))

	var patterns []string
	for _, route := range routes {
		patterns = append(patterns, route.Pattern)
	}
	assert.Contains(t, patterns[len(patterns)-1], "/users")
}

func TestNavigateConcurrently(t *testing.T) {
	n, _ := appNavigator(t)
	targets := []string{"/dashboard", "/dashboard/settings", "/users/1", "/users/2", "/"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n.Navigate(targets[(i+j)%len(targets)])
				ctx := n.View()
				_, _ = ctx.Outlet()
			}
		}(i)
	}
	wg.Wait()

	assert.True(t, n.Current().Matched())
}
