// Package routecfg loads route tables from YAML or TOML files.
//
// A table lists root routes; each route names its content instead of holding
// it, and the caller supplies the handles by name:
//
//	routes:
//	  - path: /
//	    content: shell
//	    children:
//	      - content: home        # no path: index route
//	      - path: dashboard
//	        content: dashboard
//	        outlets:
//	          sidebar:
//	            - content: dashboard-nav
//
// The same table in TOML uses arrays of tables ([[routes]],
// [[routes.children]], [[routes.children.outlets.sidebar]]).
package routecfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/rnav/core/rtr"
	"github.com/rohanthewiz/serr"
)

var (
	ErrUnknownFormat  = errors.New("unknown route table format")
	ErrUnknownContent = errors.New("route content not registered")
	ErrDecode         = errors.New("malformed route table")
)

// Table is the top level of a route table file.
type Table struct {
	Routes []Definition `yaml:"routes" toml:"routes"`
}

// Definition is one route of a table.
type Definition struct {
	Path     string                  `yaml:"path" toml:"path"`
	Content  string                  `yaml:"content" toml:"content"`
	Name     string                  `yaml:"name" toml:"name"`
	Children []Definition            `yaml:"children" toml:"children"`
	Outlets  map[string][]Definition `yaml:"outlets" toml:"outlets"`
}

// Error reports a table that could not be loaded.
// It unwraps to one of the Err* values above or to the *rtr.ConstructionError
// returned by the tree builder.
type Error struct {
	File  string // empty when parsing from memory
	Err   error
	cause error
}

func newError(file string, err error, fields ...string) *Error {
	if file != "" {
		fields = append(fields, "file", file)
	}
	return &Error{File: file, Err: err, cause: serr.Wrap(err, fields...)}
}

func (e *Error) Error() string {
	if e.File == "" {
		return "route table: " + e.Err.Error()
	}
	return fmt.Sprintf("route table %s: %v", e.File, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Err, e.cause}
}

// Load reads a route table file and builds its tree.
// The format follows the extension: .yaml, .yml or .toml.
func Load(file string, contents map[string]any) (*rtr.Tree, error) {
	format, err := FormatOf(file)
	if err != nil {
		return nil, newError(file, err, "ext", filepath.Ext(file))
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, newError(file, err)
	}

	tree, err := parse(data, format, contents, file)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Parse builds the tree of an in-memory route table.
//
// contents maps content names to handles. When contents is nil the names
// themselves become the handles, which is enough for inspection tools.
func Parse(data []byte, format string, contents map[string]any) (*rtr.Tree, error) {
	return parse(data, format, contents, "")
}

// Routes decodes a route table into definitions for Navigator.Register.
func Routes(data []byte, format string, contents map[string]any) ([]*rtr.Route, error) {
	return routes(data, format, contents, "")
}

func parse(data []byte, format string, contents map[string]any, file string) (*rtr.Tree, error) {
	roots, err := routes(data, format, contents, file)
	if err != nil {
		return nil, err
	}

	tree, err := rtr.Build(roots...)
	if err != nil {
		return nil, newError(file, err)
	}
	return tree, nil
}

func routes(data []byte, format string, contents map[string]any, file string) ([]*rtr.Route, error) {
	table, err := Decode(data, format)
	if err != nil {
		return nil, newError(file, err, "format", format)
	}

	roots := make([]*rtr.Route, 0, len(table.Routes))
	for _, def := range table.Routes {
		route, err := def.route(contents)
		if err != nil {
			return nil, newError(file, err, "route", def.Path)
		}
		roots = append(roots, route)
	}
	return roots, nil
}

// Decode parses a table without resolving contents.
func Decode(data []byte, format string) (Table, error) {
	var table Table

	switch format {
	case consts.FormatYAML:
		if err := yaml.Unmarshal(data, &table); err != nil {
			return table, errors.Join(ErrDecode, err)
		}
	case consts.FormatTOML:
		if err := toml.Unmarshal(data, &table); err != nil {
			return table, errors.Join(ErrDecode, err)
		}
	default:
		return table, ErrUnknownFormat
	}

	return table, nil
}

// FormatOf returns the table format for a file name.
func FormatOf(file string) (string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return consts.FormatYAML, nil
	case ".toml":
		return consts.FormatTOML, nil
	}
	return "", ErrUnknownFormat
}

// route converts a definition and everything below it.
func (def Definition) route(contents map[string]any) (*rtr.Route, error) {
	content, err := lookup(contents, def.Content)
	if err != nil {
		return nil, err
	}

	name := def.Name
	if name == "" {
		name = def.Content
	}
	route := rtr.NewRoute(def.Path, content).Named(name)

	for _, child := range def.Children {
		r, err := child.route(contents)
		if err != nil {
			return nil, err
		}
		route.Child(r)
	}

	// Sorted so errors are reported in a stable order
	names := make([]string, 0, len(def.Outlets))
	for outlet := range def.Outlets {
		names = append(names, outlet)
	}
	slices.Sort(names)

	for _, outlet := range names {
		children := make([]*rtr.Route, 0, len(def.Outlets[outlet]))
		for _, child := range def.Outlets[outlet] {
			r, err := child.route(contents)
			if err != nil {
				return nil, err
			}
			children = append(children, r)
		}
		route.Outlet(outlet, children...)
	}

	return route, nil
}

func lookup(contents map[string]any, name string) (any, error) {
	if name == "" {
		return nil, nil
	}
	if contents == nil {
		return name, nil
	}

	content, ok := contents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContent, name)
	}
	return content, nil
}
