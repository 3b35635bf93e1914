package scan

import (
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
)

// excerptMax caps element excerpts; longer ranges keep four lines plus an
// ellipsis marker.
const excerptMax = 5

// scanState is the per-file mutable state threaded through the line
// loop. It is local to one Scan call, which keeps the scanner reentrant
// across concurrently processed files.
type scanState struct {
	inMulti    bool
	multiStart int
	multiLines []string
}

// Scan classifies every line of a source file against the language spec
// and returns the recognized elements ordered by start line. Empty or
// whitespace-only input yields an empty slice; arbitrary malformed text
// degrades to partial recognition rather than an error.
func Scan(lines []string, spec *lang.Spec) []*Element {
	elements := []*Element{}
	st := scanState{}

	for lineNum := 1; lineNum <= len(lines); lineNum++ {
		line := strings.TrimRight(lines[lineNum-1], "\r\n")

		// Multi-line comment continuation. String detection is
		// suppressed while inside the comment; after the closing
		// delimiter the remainder re-enters the pipeline as a fragment.
		if st.inMulti {
			st.multiLines = append(st.multiLines, line)
			if idx := strings.Index(line, spec.MultiEnd); idx >= 0 {
				st.inMulti = false
				elements = append(elements, &Element{
					Kind:      lang.CommentMulti,
					StartLine: st.multiStart,
					EndLine:   lineNum,
					Excerpt:   joinExcerpt(st.multiLines),
				})
				st.multiLines = nil
				rest := line[idx+len(spec.MultiEnd):]
				if strings.TrimSpace(rest) != "" {
					scanFragment(rest, lineNum, lines, spec, &st, &elements)
				}
			}
			continue
		}

		scanFragment(line, lineNum, lines, spec, &st, &elements)
	}

	return elements
}

// scanFragment runs stages 2+ of the per-line pipeline over one line or
// a post-comment remainder of it.
func scanFragment(line string, lineNum int, lines []string, spec *lang.Spec,
	st *scanState, elements *[]*Element) {

	// Multi-line comment start.
	if spec.MultiStart != "" {
		if idx := strings.Index(line, spec.MultiStart); idx >= 0 &&
			!InStringContext(line, idx, spec) {
			afterStart := line[idx+len(spec.MultiStart):]
			if spec.MultiEnd != "" && spec.MultiStart != spec.MultiEnd &&
				strings.Contains(afterStart, spec.MultiEnd) {
				*elements = append(*elements, &Element{
					Kind:      lang.CommentMulti,
					StartLine: lineNum,
					EndLine:   lineNum,
					Excerpt:   line,
				})
				return
			}
			// Triple-quoted docstrings may close on the same line.
			if (spec.MultiStart == `"""` || spec.MultiStart == "'''") &&
				strings.Contains(afterStart, spec.MultiStart) {
				*elements = append(*elements, &Element{
					Kind:      lang.CommentMulti,
					StartLine: lineNum,
					EndLine:   lineNum,
					Excerpt:   line,
				})
				return
			}
			st.inMulti = true
			st.multiStart = lineNum
			st.multiLines = []string{line}
			return
		}
	}

	// Single-line comment. A shebang on line 1 is executable metadata,
	// not a comment.
	if spec.SingleComment != "" {
		if idx := FindComment(line, spec); idx >= 0 &&
			!(lineNum == 1 && strings.HasPrefix(strings.TrimSpace(line), "#!")) {
			before := strings.TrimSpace(line[:idx])
			if before == "" {
				*elements = append(*elements, &Element{
					Kind:      lang.CommentSingle,
					StartLine: lineNum,
					EndLine:   lineNum,
					Excerpt:   line,
				})
				return
			}
			// Inline comment: record it and keep matching the code part.
			*elements = append(*elements, &Element{
				Kind:      lang.CommentSingle,
				StartLine: lineNum,
				EndLine:   lineNum,
				Excerpt:   line[idx:],
				Name:      "inline",
			})
		}
	}

	if strings.TrimSpace(line) == "" {
		return
	}

	// Structural patterns: first match wins.
	for _, p := range spec.Patterns {
		m := p.Re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := ""
		if len(m) >= 3 {
			name = m[2]
		} else if len(m) >= 2 {
			name = m[1]
		}

		endLine := lineNum
		if !p.Kind.SingleLine() {
			endLine = blockEnd(lines, lineNum-1, spec)
		}

		excerpt := make([]string, 0, excerptMax)
		for i := lineNum - 1; i < endLine && i < len(lines); i++ {
			excerpt = append(excerpt, strings.TrimRight(lines[i], "\r\n"))
		}

		*elements = append(*elements, &Element{
			Kind:      p.Kind,
			StartLine: lineNum,
			EndLine:   endLine,
			Excerpt:   joinExcerpt(excerpt),
			Name:      name,
		})
		return
	}
}

// joinExcerpt joins excerpt lines, truncating to excerptMax with an
// ellipsis marker.
func joinExcerpt(lines []string) string {
	if len(lines) > excerptMax {
		lines = append(append([]string{}, lines[:excerptMax-1]...), "    ...")
	}
	return strings.Join(lines, "\n")
}
