package model

// InitialBlock is the starting version of the file recorded at the top of a
// development log.
type InitialBlock struct {
	Filename string
	Lines    []string
}

// RawDiffBlock is the verbatim text of one diff block, including its
// "--- previous version" / "+++ current version" header pair. Index is the
// 1-based position of the block in the log; patches must be replayed in
// exactly this order.
type RawDiffBlock struct {
	Index int
	Text  string
}

// OpKind tags a single diff line operation.
type OpKind byte

const (
	// OpContext lines appear in both the old and the new file state.
	OpContext OpKind = iota
	// OpRemove lines are deleted from the old state.
	OpRemove
	// OpAdd lines are inserted into the new state.
	OpAdd
)

// LineOp is one tagged operation inside a hunk body.
type LineOp struct {
	Kind OpKind
	Text string
}

// Hunk is one contiguous region of change. OldStart/NewStart are 1-based line
// numbers; counts follow unified-diff convention (context lines count toward
// both sides).
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Ops      []LineOp
}

// Patch is the parsed form of one diff block. Hunks are ordered by ascending
// OldStart and must not overlap in old-line coordinates.
//
// Appended carries the lines of a headerless, addition-only block, which the
// log producer emits when content was simply appended to the end of the file.
// A patch has either Hunks or Appended, never both.
type Patch struct {
	SourceIndex int
	Hunks       []Hunk
	Appended    []string
}

// Summary holds the results of one run for display.
type Summary struct {
	Filename string
	Output   string
	Patches  int
	Message  string
}
