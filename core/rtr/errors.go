package rtr

import (
	"errors"
	"fmt"

	"github.com/rohanthewiz/serr"
)

// Construction error kinds. Build wraps one of these in a *ConstructionError,
// so callers can test for them with errors.Is.
var (
	ErrMultipleIndexRoutes   = errors.New("multiple index routes under one parent")
	ErrAbsoluteChildFragment = errors.New("child route fragment is absolute")
	ErrEmptyOutletName       = errors.New("named outlet with an empty name")
	ErrMaxDepthExceeded      = errors.New("route tree exceeds the maximum nesting depth")
	ErrRouteCycle            = errors.New("route appears among its own ancestors")
	ErrInvalidParam          = errors.New("parameter segment without a name")
	ErrNilRoute              = errors.New("nil route definition")
)

// ConstructionError reports a route tree that failed validation.
// A tree that produced one is never installed.
type ConstructionError struct {
	Kind   error  // one of the Err* kinds above
	Route  string // pattern of the offending route, from the root
	Outlet string // named outlet holding the route, if any
	Detail string
	cause  error
}

func newConstructionError(kind error, route, outlet, detail string) *ConstructionError {
	fields := []string{"route", route}
	if outlet != "" {
		fields = append(fields, "outlet", outlet)
	}
	if detail != "" {
		fields = append(fields, "detail", detail)
	}

	return &ConstructionError{
		Kind:   kind,
		Route:  route,
		Outlet: outlet,
		Detail: detail,
		cause:  serr.Wrap(kind, fields...),
	}
}

func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("invalid route tree at %q: %v", e.Route, e.Kind)
	if e.Outlet != "" {
		msg += fmt.Sprintf(" (outlet %q)", e.Outlet)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap exposes both the kind and the annotated cause.
func (e *ConstructionError) Unwrap() []error {
	return []error{e.Kind, e.cause}
}
