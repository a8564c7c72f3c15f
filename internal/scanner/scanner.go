package scanner

import (
	"errors"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/drsungwon/mission-restore/internal/model"
)

// ErrMissingInitialBlock is returned when the log contains no initial-version
// header at all. Without it there is nothing to replay patches against.
var ErrMissingInitialBlock = errors.New("no 'Initial version' block found in log")

const (
	narrationPrefix = "🦊==="
	oldHeader       = "--- previous version"
	newHeader       = "+++ current version"
)

// initialHeaderRegex matches the header line that opens the initial-code
// block and captures the recorded filename.
var initialHeaderRegex = regexp.MustCompile(`^🦊=== Initial version of (.*?) ===\s*$`)

// Scan splits a log document into its initial-code block and the ordered list
// of raw diff blocks. It is a single forward pass over the lines of the
// document and performs no interpretation of diff syntax.
//
// The initial block's content runs from the line after its header up to the
// next 🦊=== narration header, the next diff header pair, or EOF. Each diff
// block runs from one "--- previous version" / "+++ current version" pair up
// to the next such pair, the next narration header, or EOF.
func Scan(document string) (model.InitialBlock, []model.RawDiffBlock, error) {
	lines := splitLines(document)

	headerAt := -1
	var initial model.InitialBlock
	for i, line := range lines {
		if m := initialHeaderRegex.FindStringSubmatch(line); m != nil {
			headerAt = i
			initial.Filename = m[1]
			break
		}
	}
	if headerAt < 0 {
		return model.InitialBlock{}, nil, ErrMissingInitialBlock
	}

	end := headerAt + 1
	for end < len(lines) && !isBlockBoundary(lines, end) {
		end++
	}
	initial.Lines = trimLeadingBlank(lines[headerAt+1 : end])

	var blocks []model.RawDiffBlock
	for i := end; i < len(lines); i++ {
		if !isDiffHeaderPair(lines, i) {
			continue
		}
		stop := i + 2
		for stop < len(lines) && !isBlockBoundary(lines, stop) {
			stop++
		}
		blocks = append(blocks, model.RawDiffBlock{
			Index: len(blocks) + 1,
			Text:  strings.Join(lines[i:stop], "\n"),
		})
		i = stop - 1
	}

	return initial, blocks, nil
}

// splitLines normalizes CRLF to LF and splits the document into lines. A
// trailing newline is treated as a terminator rather than an empty final
// line, so round-tripped content keeps its line count stable.
func splitLines(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	lines := strings.Split(document, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// isBlockBoundary reports whether line i opens a new block: either a 🦊===
// narration header or a diff header pair.
func isBlockBoundary(lines []string, i int) bool {
	return strings.HasPrefix(lines[i], narrationPrefix) || isDiffHeaderPair(lines, i)
}

// isDiffHeaderPair reports whether lines i and i+1 are the
// "--- previous version" / "+++ current version" pair that opens a diff
// block. Trailing whitespace on either header line is tolerated.
func isDiffHeaderPair(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	return strings.TrimRight(lines[i], " \t") == oldHeader &&
		strings.TrimRight(lines[i+1], " \t") == newHeader
}

// trimLeadingBlank drops empty lines at the start of the initial block's
// content. The header's trailing newline otherwise shifts every line index by
// one and poisons later context checks.
func trimLeadingBlank(lines []string) []string {
	return lo.DropWhile(lines, func(line string) bool { return line == "" })
}
