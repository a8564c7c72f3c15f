package patcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drsungwon/mission-restore/internal/model"
)

func TestApplyReplacesLine(t *testing.T) {
	buffer := []string{"a", "b", "c"}
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{{
			OldStart: 1, OldCount: 3, NewStart: 1, NewCount: 3,
			Ops: []model.LineOp{
				{Kind: model.OpContext, Text: "a"},
				{Kind: model.OpRemove, Text: "b"},
				{Kind: model.OpAdd, Text: "B"},
				{Kind: model.OpContext, Text: "c"},
			},
		}},
	}

	out, err := Apply(buffer, patch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c"}, out)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	buffer := []string{"a", "b", "c"}
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{{
			OldStart: 2, OldCount: 1, NewStart: 2, NewCount: 1,
			Ops: []model.LineOp{
				{Kind: model.OpRemove, Text: "b"},
				{Kind: model.OpAdd, Text: "B"},
			},
		}},
	}

	_, err := Apply(buffer, patch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, buffer)
}

func TestApplyMultipleHunksWithOffset(t *testing.T) {
	buffer := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	// Hunk 1 inserts a line near the top (net +1); hunk 2's old range is
	// still addressed in the original buffer's coordinates.
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{
			{
				OldStart: 1, OldCount: 2, NewStart: 1, NewCount: 3,
				Ops: []model.LineOp{
					{Kind: model.OpContext, Text: "a"},
					{Kind: model.OpAdd, Text: "X"},
					{Kind: model.OpContext, Text: "b"},
				},
			},
			{
				OldStart: 5, OldCount: 2, NewStart: 6, NewCount: 2,
				Ops: []model.LineOp{
					{Kind: model.OpContext, Text: "e"},
					{Kind: model.OpRemove, Text: "f"},
					{Kind: model.OpAdd, Text: "F"},
				},
			},
		},
	}

	out, err := Apply(buffer, patch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "X", "b", "c", "d", "e", "F", "g", "h"}, out)
}

func TestApplyPureInsertionHunk(t *testing.T) {
	buffer := []string{"a", "b", "c"}
	// A zero-length old range inserts after line OldStart.
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{{
			OldStart: 2, OldCount: 0, NewStart: 3, NewCount: 1,
			Ops: []model.LineOp{{Kind: model.OpAdd, Text: "X"}},
		}},
	}

	out, err := Apply(buffer, patch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "X", "c"}, out)
}

func TestApplyContextMismatch(t *testing.T) {
	buffer := []string{"a", "b", "c"}
	patch := model.Patch{
		SourceIndex: 3,
		Hunks: []model.Hunk{{
			OldStart: 2, OldCount: 1, NewStart: 2, NewCount: 1,
			Ops: []model.LineOp{{Kind: model.OpContext, Text: "z"}},
		}},
	}

	_, err := Apply(buffer, patch)
	var mismatch *ContextMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.PatchIndex)
	assert.Equal(t, 1, mismatch.HunkIndex)
	assert.Equal(t, 2, mismatch.Line)
	assert.Equal(t, "z", mismatch.Expected)
	assert.Equal(t, "b", mismatch.Actual)
}

func TestApplyRemoveMismatch(t *testing.T) {
	buffer := []string{"a", "b"}
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{{
			OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 0,
			Ops: []model.LineOp{{Kind: model.OpRemove, Text: "not a"}},
		}},
	}

	_, err := Apply(buffer, patch)
	var mismatch *ContextMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "not a", mismatch.Expected)
	assert.Equal(t, "a", mismatch.Actual)
}

func TestApplyOldStartBeyondBuffer(t *testing.T) {
	buffer := []string{"a"}
	patch := model.Patch{
		SourceIndex: 2,
		Hunks: []model.Hunk{{
			OldStart: 9, OldCount: 1, NewStart: 9, NewCount: 1,
			Ops: []model.LineOp{{Kind: model.OpContext, Text: "x"}},
		}},
	}

	_, err := Apply(buffer, patch)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 2, oor.PatchIndex)
	assert.Equal(t, 9, oor.OldStart)
}

func TestApplyContextPastEndOfBuffer(t *testing.T) {
	buffer := []string{"a"}
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{{
			OldStart: 1, OldCount: 2, NewStart: 1, NewCount: 2,
			Ops: []model.LineOp{
				{Kind: model.OpContext, Text: "a"},
				{Kind: model.OpContext, Text: "b"},
			},
		}},
	}

	_, err := Apply(buffer, patch)
	var oor *OutOfRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestApplyOverlappingHunks(t *testing.T) {
	buffer := []string{"a", "b", "c", "d"}
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{
			{
				OldStart: 1, OldCount: 3, NewStart: 1, NewCount: 3,
				Ops: []model.LineOp{
					{Kind: model.OpContext, Text: "a"},
					{Kind: model.OpContext, Text: "b"},
					{Kind: model.OpContext, Text: "c"},
				},
			},
			{
				OldStart: 2, OldCount: 1, NewStart: 2, NewCount: 1,
				Ops: []model.LineOp{{Kind: model.OpContext, Text: "b"}},
			},
		},
	}

	_, err := Apply(buffer, patch)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 2, oor.HunkIndex)
}

func TestApplyAppendOnlyPatch(t *testing.T) {
	buffer := []string{"a", "b"}
	patch := model.Patch{SourceIndex: 1, Appended: []string{"c", "d"}}

	out, err := Apply(buffer, patch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, out)
	assert.Equal(t, []string{"a", "b"}, buffer)
}

func TestApplyRemainderCopiedAfterLastHunk(t *testing.T) {
	buffer := []string{"a", "b", "c", "d", "e"}
	patch := model.Patch{
		SourceIndex: 1,
		Hunks: []model.Hunk{{
			OldStart: 2, OldCount: 1, NewStart: 2, NewCount: 1,
			Ops: []model.LineOp{
				{Kind: model.OpRemove, Text: "b"},
				{Kind: model.OpAdd, Text: "B"},
			},
		}},
	}

	out, err := Apply(buffer, patch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c", "d", "e"}, out)
}
