package rtr

import (
	"strings"

	"github.com/rohanthewiz/rnav/consts"
)

// Normalize canonicalizes a navigation path or route fragment by stripping
// every leading and trailing slash.
//
// The root path ("/", "//" or "") normalizes to the empty string, which is the
// "nothing left to consume" sentinel used by the resolver.
//
// The result is always a substring of the input, so Normalize never allocates.
// An input that is already canonical is returned unchanged.
//
// Consecutive separators inside the path are left alone here and skipped
// during segment splitting instead: "/a//b" resolves exactly like "/a/b".
func Normalize(path string) string {
	start, end := 0, len(path)

	for start < end && path[start] == consts.RuneFwdSlash {
		start++
	}

	for end > start && path[end-1] == consts.RuneFwdSlash {
		end--
	}

	if start == 0 && end == len(path) {
		return path
	}

	return path[start:end]
}

// SplitFirst returns the first non-empty segment of path and the rest of the
// path following it. Empty segments produced by repeated slashes are skipped.
// For a path with no segments both results are empty.
func SplitFirst(path string) (first string, rest string) {
	for {
		path = Normalize(path)
		if path == "" {
			return "", ""
		}

		slash := strings.IndexByte(path, consts.RuneFwdSlash)
		if slash == -1 {
			return path, ""
		}

		first, rest = path[:slash], path[slash+1:]
		if first != "" {
			return first, rest
		}

		path = rest
	}
}

// Segments splits path into its non-empty segments.
//
//	Segments("/users/42/")  -> ["users", "42"]
//	Segments("/a//b")       -> ["a", "b"]
//	Segments("/")           -> []
func Segments(path string) []string {
	path = Normalize(path)
	if path == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(path, consts.StrSlash)+1)

	for path != "" {
		var first string
		first, path = SplitFirst(path)
		if first == "" {
			break
		}
		segments = append(segments, first)
	}

	return segments
}

// JoinPath joins a parent path and a child fragment into a normalized path.
// An empty child (an index route) yields the parent path itself.
func JoinPath(parent, child string) string {
	parent, child = Normalize(parent), Normalize(child)

	switch {
	case child == "":
		return parent
	case parent == "":
		return child
	default:
		return parent + consts.StrSlash + child
	}
}

