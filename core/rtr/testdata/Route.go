package testdata

import (
	"bufio"
	"os"
	"strings"

	"github.com/rohanthewiz/rnav/core/rtr"
)

// Line represents a single line in a route outline file.
//
// Outline files describe a route tree by indentation, two spaces per level:
//
//	/ shell
//	  dashboard dashboard
//	    - overview
//	    settings settings
//	  @sidebar - nav
//
// The first field is the fragment ("-" for an index route), the second the
// content name. A leading "@name" places the route in that named outlet of its
// parent instead of the default children.
type Line struct {
	Depth    int
	Fragment string
	Content  string
	Outlet   string
}

// Routes loads an outline file and returns its root route definitions.
// Every route's content is its content name.
func Routes(fileName string) []*rtr.Route {
	var (
		roots []*rtr.Route
		stack []*rtr.Route // last route seen at each depth
	)

	for line := range Lines(fileName) {
		l, ok := parse(line)
		if !ok {
			continue
		}

		route := rtr.NewRoute(l.Fragment, l.Content).Named(l.Content)
		stack = append(stack[:l.Depth], route)

		if l.Depth == 0 {
			roots = append(roots, route)
			continue
		}

		parent := stack[l.Depth-1]
		if l.Outlet != "" {
			parent.Outlet(l.Outlet, route)
		} else {
			parent.Child(route)
		}
	}

	return roots
}

func parse(line string) (Line, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Line{}, false
	}

	l := Line{Depth: (len(line) - len(trimmed)) / 2}
	fields := strings.Fields(trimmed)

	if strings.HasPrefix(fields[0], "@") {
		l.Outlet = fields[0][1:]
		fields = fields[1:]
	}

	l.Fragment = fields[0]
	if l.Fragment == "-" {
		l.Fragment = ""
	}
	if len(fields) > 1 {
		l.Content = fields[1]
	}

	return l, true
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
