// Package compress strips comments, blank lines, and redundant
// whitespace from source text while preserving language semantics,
// producing a dense rendition suited for LLM context windows.
package compress

import (
	"fmt"
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

type entry struct {
	line int
	text string
}

// Source compresses source text for the given language token or
// extension. Returns lang.ErrUnsupportedLanguage (wrapped) for an
// unknown language. When numbered is true every retained line is
// prefixed with "L<original-line>> ".
func Source(source, language string, numbered bool) (string, error) {
	spec, err := lang.Default().Resolve(language)
	if err != nil {
		return "", err
	}
	return Lines(strings.Split(source, "\n"), spec, numbered), nil
}

// Lines compresses an in-memory line sequence under a resolved spec.
func Lines(lines []string, spec *lang.Spec, numbered bool) string {
	// The loop rewrites lines in place when a comment close leaves a
	// code remainder, so work on a copy.
	work := make([]string, len(lines))
	copy(work, lines)

	var result []entry
	inMulti := false
	inDocstring := false
	docstringDelim := ""
	isPython := spec.Key == "python"

	i := 0
	for i < len(work) {
		line := work[i]

		if inMulti {
			if spec.MultiEnd != "" {
				if pos := strings.Index(line, spec.MultiEnd); pos >= 0 {
					remainder := line[pos+len(spec.MultiEnd):]
					inMulti = false
					if strings.TrimSpace(remainder) != "" {
						work[i] = remainder
						continue
					}
				}
			}
			i++
			continue
		}

		if isPython && inDocstring {
			if pos := strings.Index(line, docstringDelim); pos >= 0 {
				remainder := line[pos+len(docstringDelim):]
				inDocstring = false
				docstringDelim = ""
				if strings.TrimSpace(remainder) != "" {
					work[i] = remainder
					continue
				}
			}
			i++
			continue
		}

		stripped := strings.TrimSpace(line)
		if stripped == "" {
			i++
			continue
		}

		if spec.MultiStart != "" {
			if isPython {
				dropped := false
				for _, q := range []string{`"""`, `'''`} {
					if !strings.HasPrefix(stripped, q) {
						continue
					}
					count := strings.Count(stripped, q)
					codeBefore := strings.TrimSpace(line[:strings.Index(line, q)])
					if count >= 2 && strings.HasSuffix(stripped, q) && len(stripped) > 3 {
						// One-line docstring. Assignment context
						// (x = """...""") is a string value and stays.
						if codeBefore == "" {
							dropped = true
						}
					} else if count == 1 && codeBefore == "" {
						inDocstring = true
						docstringDelim = q
						dropped = true
					}
					break
				}
				if dropped {
					i++
					continue
				}
			} else if pos := strings.Index(line, spec.MultiStart); pos >= 0 &&
				!scan.InStringContext(line, pos, spec) {
				after := line[pos+len(spec.MultiStart):]
				closePos := -1
				if spec.MultiEnd != "" {
					closePos = strings.Index(after, spec.MultiEnd)
				}
				if closePos >= 0 && spec.MultiStart != spec.MultiEnd {
					// Block comment opened and closed on one line.
					line = line[:pos] + after[closePos+len(spec.MultiEnd):]
					if strings.TrimSpace(line) == "" {
						i++
						continue
					}
					work[i] = line
					continue
				}
				inMulti = true
				if strings.TrimSpace(line[:pos]) == "" {
					i++
					continue
				}
				line = line[:pos]
			}
		}

		stripped = strings.TrimSpace(line)
		if spec.SingleComment != "" && strings.HasPrefix(stripped, spec.SingleComment) {
			if i == 0 && strings.HasPrefix(stripped, "#!") {
				result = append(result, entry{i + 1, stripped})
			}
			i++
			continue
		}

		if pos := scan.FindComment(line, spec); pos >= 0 {
			line = line[:pos]
		}

		if spec.IndentSignificant {
			content := strings.TrimSpace(line)
			if content == "" {
				i++
				continue
			}
			leading := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			line = leading + content
		} else {
			line = collapseSpaces(strings.TrimSpace(line), spec)
			if line == "" {
				i++
				continue
			}
		}

		line = strings.TrimRight(line, " \t")
		if line != "" {
			result = append(result, entry{i + 1, line})
		}
		i++
	}

	parts := make([]string, len(result))
	for idx, e := range result {
		if numbered {
			parts[idx] = fmt.Sprintf("L%d> %s", e.line, e.text)
		} else {
			parts[idx] = e.text
		}
	}
	return strings.Join(parts, "\n")
}

// collapseSpaces reduces runs of spaces outside string literals to a
// single space.
func collapseSpaces(line string, spec *lang.Spec) string {
	var b strings.Builder
	open := ""
	i := 0
	for i < len(line) {
		if open != "" {
			if strings.HasPrefix(line[i:], open) && !(len(open) == 1 && escapedQuote(line, i)) {
				b.WriteString(open)
				i += len(open)
				open = ""
				continue
			}
			b.WriteByte(line[i])
			i++
			continue
		}
		if line[i] == ' ' {
			b.WriteByte(' ')
			for i < len(line) && line[i] == ' ' {
				i++
			}
			continue
		}
		matched := false
		for _, d := range spec.StringDelims {
			if strings.HasPrefix(line[i:], d) {
				open = d
				b.WriteString(d)
				i += len(d)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(line[i])
			i++
		}
	}
	return b.String()
}

func escapedQuote(line string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
