package inspect

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rnav/core/rtr"
)

// stackView renders a resolution as nested lists, one level per depth.
type stackView struct {
	snap Snapshot
}

func (v stackView) Render(b *element.Builder) any {
	b.DivClass("rnav-resolution").R(
		b.P().R(
			b.Strong().T(v.snap.Path),
			b.T(" "),
			b.Span("class", "status "+v.snap.Status).T(v.snap.Status),
		),
		element.RenderComponents(b, entryList{entries: v.snap.Entries}),
	)
	return nil
}

// entryList renders entries[0] and nests the rest inside it.
type entryList struct {
	entries []Entry
}

func (l entryList) Render(b *element.Builder) any {
	if len(l.entries) == 0 {
		return nil
	}

	e := l.entries[0]
	b.Ul().R(
		b.Li("data-depth", strconv.Itoa(e.Depth)).R(
			b.Span("class", "pattern").T(e.Pattern),
			b.T(" ", e.Content),
			b.T(paramText(e.Params)),
			element.RenderComponents(b, entryList{entries: l.entries[1:]}),
		),
	)
	return nil
}

func paramText(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return " {" + strings.Join(pairs, ", ") + "}"
}

// routeTable renders a route list as a table.
type routeTable struct {
	routes []rtr.RouteList
}

func (t routeTable) Render(b *element.Builder) any {
	b.Table("class", "rnav-routes").R(
		b.Tr().R(
			b.Th().T("Pattern"),
			b.Th().T("Kind"),
			b.Th().T("Outlet"),
			b.Th().T("Name"),
			b.Th().T("Params"),
		),
		func() any {
			for _, route := range t.routes {
				b.Tr("data-depth", strconv.Itoa(route.Depth)).R(
					b.Td().T(strings.Repeat("  ", route.Depth)+route.Pattern),
					b.Td().T(route.Kind),
					b.Td().T(route.Outlet),
					b.Td().T(route.Name),
					b.Td().T(strings.Join(route.Params, ", ")),
				)
			}
			return nil
		}(),
	)
	return nil
}

// HTML renders a resolution as an HTML fragment.
func HTML(res rtr.Resolution) string {
	b := element.NewBuilder()
	element.RenderComponents(b, stackView{snap: Snap(res)})
	return b.String()
}

// RoutesHTML renders the route table of a tree as an HTML fragment.
func RoutesHTML(tree *rtr.Tree) string {
	b := element.NewBuilder()
	element.RenderComponents(b, routeTable{routes: tree.ListRoutes()})
	return b.String()
}
