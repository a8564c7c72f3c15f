// Package restore is the library entry point for reconstructing a file from
// a development log: an initial version followed by an ordered sequence of
// unified-diff blocks.
package restore

import (
	"strings"

	"github.com/drsungwon/mission-restore/internal/engine"
)

// Result is the outcome of a successful restore.
type Result struct {
	// Filename as recorded in the log's initial-version header.
	Filename string
	// Lines of the final reconstructed file.
	Lines []string
	// PatchesApplied is the number of diff blocks replayed.
	PatchesApplied int
}

// Restore reconstructs the final file from the full text of a log document.
// On failure the returned error identifies the diff block, hunk, and line
// where reconstruction diverged from the recorded log; no partial result is
// ever returned.
func Restore(logText string) (*Result, error) {
	res, err := engine.Restore(logText, nil)
	if err != nil {
		return nil, err
	}
	return &Result{
		Filename:       res.Filename,
		Lines:          res.Lines,
		PatchesApplied: res.PatchesApplied,
	}, nil
}

// Text renders the reconstructed file as a single string, exactly as the log
// recorded it.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}
