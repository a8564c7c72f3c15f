package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/drsungwon/mission-restore/internal/patcher"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// PrintRestoreError renders a restore failure. Context mismatches get the
// full diagnostic treatment: which patch, which hunk, which line, and a
// character-level highlight of expected vs. actual.
func PrintRestoreError(err error) {
	var mismatch *patcher.ContextMismatchError
	if errors.As(err, &mismatch) {
		Error("Fatal: context mismatch while applying patch #%d (hunk #%d) at line %d.",
			mismatch.PatchIndex, mismatch.HunkIndex, mismatch.Line)
		Info("  expected: %q", mismatch.Expected)
		Info("  actual:   %q", mismatch.Actual)
		fmt.Fprintf(os.Stderr, "  diff:     %s\n", renderLineDiff(mismatch.Expected, mismatch.Actual))
		Warning("The log is likely corrupt, or its diff blocks are out of order.")
		return
	}

	var oor *patcher.OutOfRangeError
	if errors.As(err, &oor) {
		Error("Fatal: %v", oor)
		return
	}

	Error("Fatal: %v", err)
}

// renderLineDiff produces a colored character-level diff of two single lines.
func renderLineDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	out := ""
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out += ErrorColor.Sprintf("%s", d.Text)
		case diffmatchpatch.DiffInsert:
			out += SuccessColor.Sprintf("%s", d.Text)
		default:
			out += d.Text
		}
	}
	return out
}
