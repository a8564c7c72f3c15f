package parser

import (
	"errors"
	"fmt"
)

// errMalformedHeader is internal to header parsing; callers see it wrapped in
// a HunkHeaderError carrying the block position.
var errMalformedHeader = errors.New("malformed hunk header")

// HunkHeaderError reports a hunk header line that could not be parsed into
// valid range integers. Line is 1-based within the raw diff block.
type HunkHeaderError struct {
	BlockIndex int
	Line       int
	Header     string
}

func (e *HunkHeaderError) Error() string {
	return fmt.Sprintf("diff block #%d: malformed hunk header at line %d: %q",
		e.BlockIndex, e.Line, e.Header)
}

// HunkBodyError reports a hunk body that does not satisfy its header's
// declared counts, or contains a line with an unknown operation tag.
type HunkBodyError struct {
	BlockIndex int
	HunkIndex  int
	Line       int
	Reason     string
}

func (e *HunkBodyError) Error() string {
	return fmt.Sprintf("diff block #%d, hunk #%d: malformed hunk body at line %d: %s",
		e.BlockIndex, e.HunkIndex, e.Line, e.Reason)
}

// EmptyBlockError reports a diff block whose header pair is present but which
// contains no hunks. A block is only ever emitted when a change occurred, so
// an empty one means the log is corrupt.
type EmptyBlockError struct {
	BlockIndex int
}

func (e *EmptyBlockError) Error() string {
	return fmt.Sprintf("diff block #%d contains no hunks", e.BlockIndex)
}
