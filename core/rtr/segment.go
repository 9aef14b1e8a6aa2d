package rtr

import (
	"strings"

	"github.com/rohanthewiz/rnav/consts"
)

// MatchKind is the outcome of comparing one route segment with one path segment.
type MatchKind uint8

const (
	MatchNone MatchKind = iota
	MatchLiteral
	MatchParam
)

func (k MatchKind) String() string {
	switch k {
	case MatchLiteral:
		return "literal"
	case MatchParam:
		return "parameter"
	default:
		return "no-match"
	}
}

// IsParam reports whether a route segment is a parameter segment (":name").
func IsParam(segment string) bool {
	return len(segment) > 1 && segment[0] == consts.RuneColon
}

// ParamName extracts the parameter key from a parameter segment.
// The leading colon and any constraint annotation are dropped:
//
//	":id"          -> "id"
//	":id{uuid}"    -> "id"
//	":user_id<i32>" -> "user_id"
//
// Constraints are not validated here; only the name matters for resolution.
// A segment that is not a parameter yields "".
func ParamName(segment string) string {
	if !IsParam(segment) {
		return ""
	}

	name := segment[1:]
	if cut := strings.IndexAny(name, consts.ConstraintOpeners); cut != -1 {
		name = name[:cut]
	}

	return name
}

// MatchSegment compares one route fragment segment against one path segment.
// Equal segments are a Literal match, even when the route segment is a
// parameter. Otherwise a parameter segment matches any non-empty path segment
// and returns its stripped name.
func MatchSegment(routeSegment, pathSegment string) (kind MatchKind, name string) {
	if pathSegment == "" {
		return MatchNone, ""
	}

	if routeSegment == pathSegment {
		return MatchLiteral, ""
	}

	if IsParam(routeSegment) {
		return MatchParam, ParamName(routeSegment)
	}

	return MatchNone, ""
}
