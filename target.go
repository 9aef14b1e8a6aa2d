package rnav

import (
	"strings"

	"github.com/rohanthewiz/rnav/consts"
)

// SplitTarget splits a navigation target into its path and raw query.
// A "#fragment" suffix is dropped. The path is returned as given; the
// resolver normalizes it.
//
//	SplitTarget("/search?q=go#top") -> "/search", "q=go"
//	SplitTarget("/users/7")         -> "/users/7", ""
func SplitTarget(target string) (path string, query string) {
	if hashPos := strings.IndexByte(target, consts.RuneHash); hashPos != -1 {
		target = target[:hashPos]
	}

	queryPos := strings.IndexByte(target, consts.RuneQuestion)
	if queryPos == -1 {
		return target, ""
	}

	return target[:queryPos], target[queryPos+1:]
}
