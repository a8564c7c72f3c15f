// Package parser turns one raw diff block into a structured Patch: an
// ordered list of hunks with line-range metadata and tagged line operations.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/drsungwon/mission-restore/internal/model"
)

// hunkHeaderRegex matches "@@ -old_start[,old_count] +new_start[,new_count] @@".
// An omitted count means 1, per unified-diff convention.
var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse consumes one raw diff block and produces a Patch, or one of the
// structured parse errors (HunkHeaderError, HunkBodyError, EmptyBlockError).
// Hunks are kept in the order encountered; the parser never reorders or
// merges them.
func Parse(raw model.RawDiffBlock) (model.Patch, error) {
	lines := strings.Split(raw.Text, "\n")

	// Skip the "--- previous version" / "+++ current version" pair.
	body := lines
	if len(body) > 2 {
		body = body[2:]
	} else {
		body = nil
	}

	patch := model.Patch{SourceIndex: raw.Index}

	pos := 0
	skipIgnorable(body, &pos)
	if pos >= len(body) {
		return model.Patch{}, &EmptyBlockError{BlockIndex: raw.Index}
	}

	if !strings.HasPrefix(body[pos], "@@") {
		// Headerless blocks appear when the log producer recorded a plain
		// append to the end of the file: the body is addition lines only.
		appended, ok := parseAppendOnly(body[pos:])
		if !ok {
			return model.Patch{}, &HunkHeaderError{BlockIndex: raw.Index, Line: pos + 3, Header: body[pos]}
		}
		patch.Appended = appended
		return patch, nil
	}

	for pos < len(body) {
		header := body[pos]
		hunk, err := parseHunkHeader(header)
		if err != nil {
			return model.Patch{}, &HunkHeaderError{BlockIndex: raw.Index, Line: pos + 3, Header: header}
		}
		pos++

		if err := parseHunkBody(body, &pos, &hunk); err != nil {
			if be, ok := err.(*HunkBodyError); ok {
				be.BlockIndex = raw.Index
				be.HunkIndex = len(patch.Hunks) + 1
			}
			return model.Patch{}, err
		}
		patch.Hunks = append(patch.Hunks, hunk)

		skipIgnorable(body, &pos)
		if pos < len(body) && !strings.HasPrefix(body[pos], "@@") {
			return model.Patch{}, &HunkBodyError{
				BlockIndex: raw.Index,
				HunkIndex:  len(patch.Hunks),
				Line:       pos + 3,
				Reason:     "unexpected line after hunk: " + strconv.Quote(body[pos]),
			}
		}
	}

	if len(patch.Hunks) == 0 {
		return model.Patch{}, &EmptyBlockError{BlockIndex: raw.Index}
	}
	return patch, nil
}

// parseHunkHeader decodes the four range integers of a hunk header. Starts
// must be at least 1 and counts at least 0.
func parseHunkHeader(header string) (model.Hunk, error) {
	m := hunkHeaderRegex.FindStringSubmatch(strings.TrimRight(header, " \t"))
	if m == nil {
		return model.Hunk{}, errMalformedHeader
	}
	hunk := model.Hunk{
		OldStart: atoiDefault(m[1], 1),
		OldCount: atoiDefault(m[2], 1),
		NewStart: atoiDefault(m[3], 1),
		NewCount: atoiDefault(m[4], 1),
	}
	if hunk.OldStart < 1 || hunk.NewStart < 1 {
		return model.Hunk{}, errMalformedHeader
	}
	return hunk, nil
}

// parseHunkBody reads operation lines until both the old and the new side of
// the hunk's declared counts are satisfied. Context lines count toward both
// sides, removals toward the old side only, additions toward the new side
// only. Empty lines and "\ No newline" markers are skipped without counting.
func parseHunkBody(body []string, pos *int, hunk *model.Hunk) error {
	oldSeen, newSeen := 0, 0
	for oldSeen < hunk.OldCount || newSeen < hunk.NewCount {
		if *pos >= len(body) {
			return &HunkBodyError{
				Line:   *pos + 3,
				Reason: "hunk ended before counts were satisfied",
			}
		}
		line := body[*pos]
		if line == "" || strings.HasPrefix(line, `\`) {
			*pos++
			continue
		}

		op, text := line[0], line[1:]
		switch op {
		case ' ':
			if oldSeen >= hunk.OldCount || newSeen >= hunk.NewCount {
				return overrunError(*pos, line)
			}
			hunk.Ops = append(hunk.Ops, model.LineOp{Kind: model.OpContext, Text: text})
			oldSeen++
			newSeen++
		case '-':
			if oldSeen >= hunk.OldCount {
				return overrunError(*pos, line)
			}
			hunk.Ops = append(hunk.Ops, model.LineOp{Kind: model.OpRemove, Text: text})
			oldSeen++
		case '+':
			if newSeen >= hunk.NewCount {
				return overrunError(*pos, line)
			}
			hunk.Ops = append(hunk.Ops, model.LineOp{Kind: model.OpAdd, Text: text})
			newSeen++
		default:
			return &HunkBodyError{
				Line:   *pos + 3,
				Reason: "unknown operation tag in " + strconv.Quote(line),
			}
		}
		*pos++
	}
	return nil
}

func overrunError(pos int, line string) *HunkBodyError {
	return &HunkBodyError{
		Line:   pos + 3,
		Reason: "operation exceeds declared hunk counts: " + strconv.Quote(line),
	}
}

// parseAppendOnly accepts a headerless body made solely of addition lines
// (blank lines tolerated) and returns the appended text.
func parseAppendOnly(body []string) ([]string, bool) {
	var appended []string
	for _, line := range body {
		switch {
		case strings.HasPrefix(line, "+"):
			appended = append(appended, line[1:])
		case strings.TrimSpace(line) == "":
			// separator noise between appended lines
		default:
			return nil, false
		}
	}
	if len(appended) == 0 {
		return nil, false
	}
	return appended, true
}

// skipIgnorable advances pos past blank lines and "\ No newline" markers.
func skipIgnorable(body []string, pos *int) {
	for *pos < len(body) && (body[*pos] == "" || strings.HasPrefix(body[*pos], `\`)) {
		*pos++
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
