package rtr

// flow tells the resolver what to do after trying a candidate route.
type flow int

const (
	// flowStop means the path was fully resolved and the stack is final.
	flowStop flow = iota

	// flowNext means the candidate (or everything below it) failed to match.
	// The resolver pops back to the candidate's depth and tries the next
	// sibling, literal candidates first, then parameter candidates.
	flowNext
)
