package rtr

// DepthCursor tracks which level of a MatchStack the renderer is drawing.
//
// The root view calls Reset before rendering the stack's root entry. Each
// default outlet claims the next depth, renders the entry found there and
// restores the cursor afterwards, so sibling outlets at the same level see the
// same depth and nested outlets descend one level at a time.
//
// A cursor belongs to one render pass and is not safe for concurrent use.
// Views that render in parallel should pass depths explicitly instead (see
// the Context type of the root package).
type DepthCursor struct {
	noCopy noCopy
	depth  int
}

// Reset rewinds the cursor to the root.
func (c *DepthCursor) Reset() {
	c.depth = 0
}

// Current returns the depth being rendered.
func (c *DepthCursor) Current() int {
	return c.depth
}

// ClaimNext advances to the next depth and returns it.
func (c *DepthCursor) ClaimNext() int {
	c.depth++
	return c.depth
}

// Save returns the current depth for a later Restore.
func (c *DepthCursor) Save() int {
	return c.depth
}

// Restore sets the cursor back to a saved depth.
func (c *DepthCursor) Restore(depth int) {
	c.depth = depth
}

// Scoped runs fn and restores the depth it started from, whatever fn claimed.
func (c *DepthCursor) Scoped(fn func()) {
	saved := c.depth
	defer func() { c.depth = saved }()
	fn()
}

// Outlet claims the next depth and calls render with the stack's entry there.
// The cursor is restored afterwards. It returns false, without calling render,
// when the stack has nothing at that depth.
func (c *DepthCursor) Outlet(stack *MatchStack, render func(MatchEntry)) bool {
	rendered := false

	c.Scoped(func() {
		entry, ok := stack.AtDepth(c.ClaimNext())
		if !ok {
			return
		}
		render(entry)
		rendered = true
	})

	return rendered
}
