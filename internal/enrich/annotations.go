package enrich

import (
	"regexp"
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

var (
	exitReturnRe  = regexp.MustCompile(`^\s*(return\b.*|yield\b.*|raise\b.*|throw\b.*|panic!?\(.*)`)
	exitProcessRe = regexp.MustCompile(`^\s*(sys\.exit\(.*|os\._exit\(.*|exit\(.*|process\.exit\(.*|os\.Exit\(.*)`)
)

// extractBodyAnnotations re-scans every multi-line element's interior
// (excluding the declaration line) for standalone and inline comments
// and for exit-point statements.
func extractBodyAnnotations(elements []*scan.Element, spec *lang.Spec, sourceLines []string) {
	for _, e := range elements {
		if e.Kind.SingleLine() || e.Kind.IsComment() {
			continue
		}
		if e.EndLine <= e.StartLine {
			continue
		}

		var comments []scan.BodyComment
		var exits []scan.ExitPoint

		bodyEnd := e.EndLine
		if bodyEnd > len(sourceLines) {
			bodyEnd = len(sourceLines)
		}

		inMulti := false
		multiStart := 0
		var multiLines []string

		for idx := e.StartLine; idx < bodyEnd; idx++ {
			raw := strings.TrimRight(sourceLines[idx], "\r\n")
			stripped := strings.TrimSpace(raw)
			if stripped == "" {
				continue
			}

			if inMulti {
				multiLines = append(multiLines, stripped)
				if spec.MultiEnd != "" && strings.Contains(stripped, spec.MultiEnd) {
					inMulti = false
					parts := make([]string, 0, len(multiLines))
					for _, ln := range multiLines {
						parts = append(parts, CleanCommentLine(ln))
					}
					if text := strings.TrimSpace(strings.Join(parts, " ")); text != "" {
						comments = append(comments, scan.BodyComment{
							Start: multiStart, End: idx + 1, Text: text,
						})
					}
					multiLines = nil
				}
				continue
			}

			if spec.MultiStart != "" && strings.Contains(stripped, spec.MultiStart) {
				pos := strings.Index(stripped, spec.MultiStart)
				if !scan.InStringContext(stripped, pos, spec) {
					if spec.MultiStart == `"""` || spec.MultiStart == "'''" {
						after := stripped[pos+3:]
						if strings.Contains(after, spec.MultiStart) {
							if text := CleanCommentLine(stripped); text != "" {
								comments = append(comments, scan.BodyComment{
									Start: idx + 1, End: idx + 1, Text: text,
								})
							}
							continue
						}
					} else if spec.MultiEnd != "" &&
						strings.Contains(stripped[pos+len(spec.MultiStart):], spec.MultiEnd) {
						if text := CleanCommentLine(stripped); text != "" {
							comments = append(comments, scan.BodyComment{
								Start: idx + 1, End: idx + 1, Text: text,
							})
						}
						continue
					}
					inMulti = true
					multiStart = idx + 1
					multiLines = []string{stripped}
					continue
				}
			}

			if spec.SingleComment != "" {
				if pos := scan.FindComment(stripped, spec); pos >= 0 {
					before := strings.TrimSpace(stripped[:pos])
					cleaned := CleanCommentLine(stripped[pos:])
					if cleaned != "" {
						comments = append(comments, scan.BodyComment{
							Start: idx + 1, End: idx + 1, Text: cleaned,
						})
					}
					if before == "" {
						continue
					}
				}
			}

			if exitReturnRe.MatchString(stripped) || exitProcessRe.MatchString(stripped) {
				exits = append(exits, scan.ExitPoint{Line: idx + 1, Code: stripped})
			}
		}

		e.BodyComments = comments
		e.ExitPoints = exits
	}
}

// commentPrefixes are stripped from the front of a comment line, longest
// first so that /// wins over //.
var commentPrefixes = []string{"///", "//!", "//", "#!", "##", "#", "--", ";;"}

// CleanCommentLine strips comment markers and surrounding quote/star
// noise from one line of comment text.
func CleanCommentLine(text string) string {
	s := strings.TrimSpace(text)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}
	s = strings.Trim(s, `/*"'`)
	return strings.TrimSpace(s)
}

// CommentText flattens a comment element's excerpt into cleaned prose,
// optionally truncated. Ruby =begin/=end fence lines are dropped.
func CommentText(e *scan.Element, maxLen int) string {
	var cleaned []string
	for _, ln := range strings.Split(e.Excerpt, "\n") {
		s := CleanCommentLine(ln)
		if s != "" && !strings.HasPrefix(s, "=begin") && !strings.HasPrefix(s, "=end") {
			cleaned = append(cleaned, s)
		}
	}
	text := strings.Join(cleaned, " ")
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen-3] + "..."
	}
	return text
}

// CommentLines is CommentText preserving per-line structure.
func CommentLines(e *scan.Element) []string {
	var cleaned []string
	for _, ln := range strings.Split(e.Excerpt, "\n") {
		s := CleanCommentLine(ln)
		if s != "" && !strings.HasPrefix(s, "=begin") && !strings.HasPrefix(s, "=end") {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}
