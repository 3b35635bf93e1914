package scan

import (
	"fmt"

	"github.com/srcfold/srcfold/internal/lang"
)

// DoxygenFields maps a normalized Doxygen tag ("brief", "param[in]") to
// the content of each occurrence, in source order.
type DoxygenFields map[string][]string

// BodyComment is a comment found inside an element's body. Start and End
// are equal for single-line comments.
type BodyComment struct {
	Start int
	End   int
	Text  string
}

// ExitPoint is a control-flow exit statement inside an element's body.
type ExitPoint struct {
	Line int
	Code string
}

// Element is one recognized construct or comment in a source file.
// Elements are produced by Scan sorted by StartLine; enrichment mutates
// them in place and nothing outlives a single file's pipeline.
type Element struct {
	Kind      lang.Kind
	StartLine int // 1-based, inclusive
	EndLine   int // 1-based, inclusive; equals StartLine unless a block end was found
	Excerpt   string

	// Set by the scanner when the pattern captured an identifier, and
	// refined by enrichment. The literal name "inline" marks a trailing
	// comment that shares its line with code.
	Name string

	// Populated by enrichment only.
	Signature  string
	Visibility string
	ParentName string
	Inherits   string
	Depth      int

	BodyComments  []BodyComment
	ExitPoints    []ExitPoint
	DoxygenFields DoxygenFields
}

// Location renders the element's line range as L<start> or L<start>-<end>.
func (e *Element) Location() string {
	if e.StartLine == e.EndLine {
		return fmt.Sprintf("L%d", e.StartLine)
	}
	return fmt.Sprintf("L%d-%d", e.StartLine, e.EndLine)
}

// FirstLine returns the first line of the excerpt.
func (e *Element) FirstLine() string {
	for i := 0; i < len(e.Excerpt); i++ {
		if e.Excerpt[i] == '\n' {
			return e.Excerpt[:i]
		}
	}
	return e.Excerpt
}

// Inline reports whether the element is a trailing same-line comment.
func (e *Element) Inline() bool {
	return e.Kind.IsComment() && e.Name == "inline"
}
