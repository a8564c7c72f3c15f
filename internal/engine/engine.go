// Package engine folds an ordered sequence of parsed patches over the
// initial code block of a development log, producing the final file state or
// the first failure encountered.
package engine

import (
	"strings"

	"github.com/drsungwon/mission-restore/internal/parser"
	"github.com/drsungwon/mission-restore/internal/patcher"
	"github.com/drsungwon/mission-restore/internal/scanner"
)

// ProgressFunc is called after each successfully applied patch.
type ProgressFunc func(applied, total int)

// Result is the outcome of a successful restore.
type Result struct {
	// Filename as recorded in the log's initial-version header.
	Filename string
	// Lines is the final reconstructed file state.
	Lines []string
	// PatchesApplied is the number of diff blocks replayed.
	PatchesApplied int
}

// Text renders the reconstructed file exactly as the log recorded it, with no
// trailing newline added.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Restore scans document, parses each diff block in order, and replays the
// patches against the evolving buffer. Each patch's context lines are defined
// relative to the buffer produced by the previous one, so replay is strictly
// sequential: the first parse or apply failure aborts the fold and is
// returned as-is, already carrying block/hunk/line positional context.
// progress may be nil.
func Restore(document string, progress ProgressFunc) (*Result, error) {
	initial, blocks, err := scanner.Scan(document)
	if err != nil {
		return nil, err
	}

	buffer := initial.Lines
	for i, raw := range blocks {
		patch, err := parser.Parse(raw)
		if err != nil {
			return nil, err
		}
		buffer, err = patcher.Apply(buffer, patch)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			progress(i+1, len(blocks))
		}
	}

	return &Result{
		Filename:       initial.Filename,
		Lines:          buffer,
		PatchesApplied: len(blocks),
	}, nil
}
