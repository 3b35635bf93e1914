package render

import (
	"fmt"
	"strings"

	"github.com/srcfold/srcfold/internal/enrich"
	"github.com/srcfold/srcfold/internal/scan"
)

const listingLineMax = 72

func listingLoc(e *scan.Element) string {
	if e.StartLine == e.EndLine {
		return fmt.Sprintf("L%d", e.StartLine)
	}
	return fmt.Sprintf("L%d-L%d", e.StartLine, e.EndLine)
}

// Structured formats the full analysis as a verbose three-section
// listing: definitions with depth indentation, comments, and a
// complete element listing in source order.
func Structured(elements []*scan.Element) string {
	var out []string
	sorted := sortedByStart(elements)

	out = append(out, "## Definitions", "")
	for _, e := range sorted {
		if e.Kind.IsComment() {
			continue
		}
		indent := strings.Repeat("  ", e.Depth)
		name := ""
		if e.Name != "" {
			name = " " + e.Name
		}
		vis := ""
		if e.Visibility != "" {
			vis = fmt.Sprintf(" [%s]", e.Visibility)
		}
		out = append(out, fmt.Sprintf("%s- [%s]%s%s %s", indent, e.Kind.Label(), name, vis, listingLoc(e)))
	}

	out = append(out, "", "## Comments", "")
	for _, e := range sorted {
		if !e.Kind.IsComment() || e.Inline() {
			continue
		}
		text := enrich.CommentText(e, listingLineMax)
		if text == "" {
			continue
		}
		out = append(out, fmt.Sprintf("- %s: %s", listingLoc(e), text))
	}

	out = append(out, "", "## Complete Listing", "")
	prevEnd := -1
	for _, e := range sorted {
		if prevEnd >= 0 && e.StartLine > prevEnd+1 {
			out = append(out, "")
		}
		name := ""
		if e.Name != "" && e.Name != "inline" {
			name = " " + e.Name
		}
		out = append(out, fmt.Sprintf("%6d | [%s]%s %s", e.StartLine, e.Kind.Label(), name, listingLoc(e)))
		first := e.FirstLine()
		if len(first) > listingLineMax {
			first = first[:listingLineMax-3] + "..."
		}
		out = append(out, fmt.Sprintf("       | %s", first))
		prevEnd = e.EndLine
	}

	return strings.Join(out, "\n")
}
