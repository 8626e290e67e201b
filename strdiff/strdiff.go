// Package strdiff renders character-level differences between two
// strings for mismatch diagnostics.
package strdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Inline renders the differences between from and to using
// [-deleted-] and [+inserted+] markers, suitable for plain-text
// mismatch reports.
func Inline(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	b := &strings.Builder{}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(diff.Text)
			b.WriteString("-]")
		case diffpatch.DiffInsert:
			b.WriteString("[+")
			b.WriteString(diff.Text)
			b.WriteString("+]")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

// Pretty renders the differences with ANSI colors for terminal
// output.
func Pretty(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}
