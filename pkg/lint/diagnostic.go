// Package lint implements the sentence-newline rule: every sentence in
// Markdown prose must begin at the start of a line.
package lint

import "fmt"

// Diagnostic represents a single rule violation found in a document.
type Diagnostic struct {
	// Path is the file the violation was found in.
	Path string

	// Line is the 1-based line number of the violation.
	Line int

	// Message is the human-readable description of the violation.
	Message string
}

// String formats the diagnostic in the canonical reporting form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s, line %d: %s", d.Path, d.Line, d.Message)
}
