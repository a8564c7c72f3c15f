// Package patcher applies one parsed patch to an in-memory code buffer,
// verifying that every context and removal line still matches the buffer at
// the point of application.
package patcher

import (
	"github.com/drsungwon/mission-restore/internal/model"
)

// Apply replays patch against buffer and returns the resulting buffer. It is
// pure: the input slice is never mutated, so a caller can keep the previous
// state for diagnostics.
//
// Hunk old_start values address the buffer as it was before this patch, so a
// read cursor walks the input buffer while a running offset (the cumulative
// new-minus-old line delta of the hunks already applied in this patch) tracks
// where each hunk lands in the output being assembled.
func Apply(buffer []string, patch model.Patch) ([]string, error) {
	if len(patch.Hunks) == 0 {
		out := make([]string, 0, len(buffer)+len(patch.Appended))
		out = append(out, buffer...)
		return append(out, patch.Appended...), nil
	}

	out := make([]string, 0, len(buffer))
	cursor := 0
	offset := 0

	for hi, hunk := range patch.Hunks {
		start := hunk.OldStart - 1
		if hunk.OldCount == 0 {
			// A zero-length old range inserts after line OldStart.
			start = hunk.OldStart
		}
		// The hunk lands at start+offset in the output; landing inside what
		// has already been written means the hunks overlap or run backward.
		if start+offset < len(out) || start > len(buffer) {
			return nil, &OutOfRangeError{
				PatchIndex: patch.SourceIndex,
				HunkIndex:  hi + 1,
				OldStart:   hunk.OldStart,
				Offset:     offset,
				BufferLen:  len(buffer),
			}
		}
		out = append(out, buffer[cursor:start]...)
		cursor = start

		for _, op := range hunk.Ops {
			switch op.Kind {
			case model.OpContext, model.OpRemove:
				if cursor >= len(buffer) {
					return nil, &OutOfRangeError{
						PatchIndex: patch.SourceIndex,
						HunkIndex:  hi + 1,
						OldStart:   hunk.OldStart,
						Offset:     offset,
						BufferLen:  len(buffer),
					}
				}
				// Exact equality, trailing whitespace included. Anything
				// looser would let silent corruption through.
				if buffer[cursor] != op.Text {
					return nil, &ContextMismatchError{
						PatchIndex: patch.SourceIndex,
						HunkIndex:  hi + 1,
						Line:       cursor + 1,
						Expected:   op.Text,
						Actual:     buffer[cursor],
					}
				}
				if op.Kind == model.OpContext {
					out = append(out, buffer[cursor])
				}
				cursor++
			case model.OpAdd:
				out = append(out, op.Text)
			}
		}

		offset += hunk.NewCount - hunk.OldCount
	}

	out = append(out, buffer[cursor:]...)
	return out, nil
}
