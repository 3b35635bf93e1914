package scan

import (
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
)

// InStringContext reports whether column pos of line falls inside a
// string literal according to the spec's quote styles. The walk honors
// escapes for single-character delimiters: a delimiter is escaped only
// when preceded by an odd number of consecutive backslashes.
func InStringContext(line string, pos int, spec *lang.Spec) bool {
	open := ""
	i := 0
	for i < pos && i < len(line) {
		if open != "" {
			if strings.HasPrefix(line[i:], open) {
				if len(open) == 1 && escapedAt(line, i) {
					i++
					continue
				}
				i += len(open)
				open = ""
				continue
			}
			i++
			continue
		}
		matched := false
		for _, d := range spec.StringDelims {
			if strings.HasPrefix(line[i:], d) {
				open = d
				i += len(d)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return open != ""
}

// FindComment returns the column of the first single-line comment marker
// outside string context, or -1 when the line has none.
func FindComment(line string, spec *lang.Spec) int {
	if spec.SingleComment == "" {
		return -1
	}
	open := ""
	i := 0
	for i < len(line) {
		if open != "" {
			if strings.HasPrefix(line[i:], open) {
				if len(open) == 1 && escapedAt(line, i) {
					i++
					continue
				}
				i += len(open)
				open = ""
				continue
			}
			i++
			continue
		}
		if strings.HasPrefix(line[i:], spec.SingleComment) {
			return i
		}
		matched := false
		for _, d := range spec.StringDelims {
			if strings.HasPrefix(line[i:], d) {
				open = d
				i += len(d)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return -1
}

// escapedAt reports whether the character at index i is escaped by an
// odd run of backslashes immediately before it.
func escapedAt(line string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
