// Package inspect renders resolutions and route tables for debugging:
// plain text for logs and terminals, JSON for tooling, HTML for a debug page.
package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rohanthewiz/rnav/core/rtr"
)

// Entry is the exported form of one match stack entry.
type Entry struct {
	Depth   int               `json:"depth"`
	Pattern string            `json:"pattern"`
	Path    string            `json:"path"`
	Name    string            `json:"name,omitempty"`
	Outlet  string            `json:"outlet,omitempty"`
	Content string            `json:"content,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

// Snapshot is the exported form of a resolution.
type Snapshot struct {
	Path        string  `json:"path"`
	Status      string  `json:"status"`
	Outlet      string  `json:"outlet,omitempty"`
	FailedDepth int     `json:"failed_depth"`
	Fingerprint string  `json:"fingerprint"`
	Entries     []Entry `json:"entries"`
}

// Snap converts a resolution for export.
func Snap(res rtr.Resolution) Snapshot {
	snap := Snapshot{
		Path:        "/" + res.Path,
		Status:      res.Status.String(),
		Outlet:      res.Outlet,
		FailedDepth: res.FailedDepth,
		Fingerprint: fmt.Sprintf("%016x", res.Stack.Fingerprint()),
		Entries:     make([]Entry, 0, res.Stack.Len()),
	}

	for _, e := range res.Stack.Entries() {
		entry := Entry{
			Depth:   e.Depth,
			Pattern: e.Node.Pattern(),
			Path:    "/" + e.Path,
			Name:    e.Node.Name(),
			Outlet:  e.Node.Outlet(),
			Content: contentRef(e.Node.Content()),
		}
		if len(e.Params) > 0 {
			entry.Params = e.Params.Map()
		}
		snap.Entries = append(snap.Entries, entry)
	}
	return snap
}

// contentRef names a content handle: strings as themselves, anything else by type.
func contentRef(content any) string {
	switch c := content.(type) {
	case nil:
		return ""
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprintf("%T", c)
	}
}

// Text renders a resolution as a header line followed by the stack.
//
//	/users/42 -> matched
//	[0] / (shell)
//	  [1] /users/:id {id=42}
func Text(res rtr.Resolution) string {
	var sb strings.Builder
	sb.WriteString("/")
	sb.WriteString(res.Path)
	if res.Outlet != "" {
		sb.WriteString(" @")
		sb.WriteString(res.Outlet)
	}
	sb.WriteString(" -> ")
	sb.WriteString(res.Status.String())
	if res.Status == rtr.StatusUnmatched {
		fmt.Fprintf(&sb, " (failed at depth %d)", res.FailedDepth)
	}
	sb.WriteByte('\n')
	sb.WriteString(res.Stack.String())
	return sb.String()
}

// RoutesText renders a route table, one route per line, indented by depth.
func RoutesText(tree *rtr.Tree) string {
	var sb strings.Builder
	for _, route := range tree.ListRoutes() {
		sb.WriteString(strings.Repeat("  ", route.Depth))
		if route.Outlet != "" {
			sb.WriteString("@")
			sb.WriteString(route.Outlet)
			sb.WriteByte(' ')
		}
		sb.WriteString(route.Pattern)
		sb.WriteString(" [")
		sb.WriteString(route.Kind)
		sb.WriteByte(']')
		if route.Name != "" {
			sb.WriteString(" ")
			sb.WriteString(route.Name)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// JSON encodes the Snapshot of a resolution.
func JSON(res rtr.Resolution) ([]byte, error) {
	return json.MarshalIndent(Snap(res), "", "  ")
}

// RoutesJSON encodes the route list of a tree.
func RoutesJSON(tree *rtr.Tree) ([]byte, error) {
	routes := tree.ListRoutes()
	if routes == nil {
		routes = []rtr.RouteList{}
	}
	return json.MarshalIndent(routes, "", "  ")
}
