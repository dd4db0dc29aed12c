package lint

import (
	"fmt"
	"strings"
)

const (
	// IgnoreMarker disables the rule for subsequent lines.
	// It must appear alone on a line (surrounding whitespace is allowed).
	IgnoreMarker = "<!-- ignore(sentence-newline) -->"

	// UnignoreMarker re-enables the rule.
	UnignoreMarker = "<!-- unignore(sentence-newline) -->"

	// fenceMarker toggles code-block suppression. Any line containing it
	// flips the fence state once, regardless of how often it occurs.
	fenceMarker = "```"

	// DefaultMaxIgnoreLines is the default bound on how many consecutive
	// lines an ignore region may cover before it is itself reported.
	DefaultMaxIgnoreLines = 20
)

// Checker applies the sentence-newline rule to whole documents.
type Checker struct {
	// MaxIgnoreLines bounds how long an ignore region may stay open.
	// Zero means DefaultMaxIgnoreLines.
	MaxIgnoreLines int
}

// New creates a Checker with default settings.
func New() *Checker {
	return &Checker{}
}

// checkState is the per-document state. It is created fresh for every
// document; nothing carries over between documents.
type checkState struct {
	inCodeBlock     bool
	inIgnoreBlock   bool
	ignoreLineCount int
}

// CheckDocument scans the full text of one document and returns all
// violations in line order. The content is split on line boundaries;
// line numbers are 1-based.
//
// Per line, in this order: fence toggling, ignore-marker handling,
// ignore-duration tracking, then the suppression gate, then the boundary
// scan. The gate reads the state as already mutated for the same line, so
// marker lines themselves are never boundary-checked. Keep that ordering.
func (c *Checker) CheckDocument(path, content string) []Diagnostic {
	limit := c.MaxIgnoreLines
	if limit <= 0 {
		limit = DefaultMaxIgnoreLines
	}

	var diags []Diagnostic
	st := checkState{}

	for i, line := range splitLines(content) {
		lineNum := i + 1

		if strings.Contains(line, fenceMarker) {
			st.inCodeBlock = !st.inCodeBlock
		}

		switch strings.TrimSpace(line) {
		case IgnoreMarker:
			if st.inIgnoreBlock {
				diags = append(diags, Diagnostic{
					Path:    path,
					Line:    lineNum,
					Message: "sentence-newline already disabled",
				})
			}
			st.inIgnoreBlock = true
		case UnignoreMarker:
			// Ending a region that is not open is not an error.
			st.inIgnoreBlock = false
		}

		if st.inIgnoreBlock {
			st.ignoreLineCount++
			if st.ignoreLineCount > limit {
				// Fires on every line past the limit until the
				// region closes.
				diags = append(diags, Diagnostic{
					Path:    path,
					Line:    lineNum,
					Message: fmt.Sprintf("ignoring a rule for more than %d lines", limit),
				})
			}
		} else {
			st.ignoreLineCount = 0
		}

		if st.inIgnoreBlock || st.inCodeBlock {
			continue
		}

		if snippet, ok := boundarySnippet(line); ok {
			snippet = strings.ReplaceAll(snippet, "\n", `\n`)
			diags = append(diags, Diagnostic{
				Path:    path,
				Line:    lineNum,
				Message: fmt.Sprintf("place new sentence on a new line: |``%s|", snippet),
			})
		}
	}

	return diags
}

// splitLines splits content on newlines, tolerating CRLF endings. A
// trailing newline does not produce a final empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
