package format

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff of got against want, with removed lines
// marked by "-", added lines by "+" and common lines by a space.
// It reports whether the two differ.
func Diff(got, want []byte) (string, bool) {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(string(got), string(want))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	differ := false
	for _, d := range diffs {
		mark := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			mark = "-"
			differ = true
		case diffpatch.DiffInsert:
			mark = "+"
			differ = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(mark)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}
	return sb.String(), differ
}
