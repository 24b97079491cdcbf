// Package diffutil produces classic unified diffs (---/+++ headers, @@
// hunks) via github.com/pmezard/go-difflib/difflib. Tests use it to report
// mismatches in multi-line output readably instead of dumping both strings.
package diffutil

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Options controls patch generation behavior.
type Options struct {
	// Context is the number of context lines in unified hunks.
	// If 0, defaults to 3.
	Context int
}

// Unified produces a unified patch for a↦b. Identical inputs yield an
// empty string.
func Unified(aName, bName, a, b string, opt Options) string {
	ctx := opt.Context
	if ctx <= 0 {
		ctx = 3
	}
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(a),
		B:        splitLinesKeepNL(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  ctx,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}

// splitLinesKeepNL splits into lines and keeps newline characters, which
// produces better unified hunks. A final line without "\n" is kept as-is.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}
