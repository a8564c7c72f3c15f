package patcher

import "fmt"

// ContextMismatchError reports that the buffer diverged from what a patch
// assumes: a context or removal line did not match the buffer at the point of
// application. It almost always means patches were replayed out of order, a
// patch is missing, or the log is corrupt. Line is the 1-based line number in
// the buffer the patch was applied against.
type ContextMismatchError struct {
	PatchIndex int
	HunkIndex  int
	Line       int
	Expected   string
	Actual     string
}

func (e *ContextMismatchError) Error() string {
	return fmt.Sprintf("patch #%d, hunk #%d: context mismatch at line %d: expected %q, found %q",
		e.PatchIndex, e.HunkIndex, e.Line, e.Expected, e.Actual)
}

// OutOfRangeError reports a hunk whose old-line range falls outside the
// current buffer, or lands inside a region an earlier hunk already rewrote.
type OutOfRangeError struct {
	PatchIndex int
	HunkIndex  int
	OldStart   int
	Offset     int
	BufferLen  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("patch #%d, hunk #%d: old range starting at line %d (offset %+d) is outside the %d-line buffer",
		e.PatchIndex, e.HunkIndex, e.OldStart, e.Offset, e.BufferLen)
}
