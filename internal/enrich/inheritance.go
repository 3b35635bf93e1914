package enrich

import (
	"regexp"
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

var (
	pyBasesRe     = regexp.MustCompile(`class\s+\w+\s*\(([^)]+)\)`)
	extendsRe     = regexp.MustCompile(`\bextends\s+([\w.<>, ]+)`)
	implementsRe  = regexp.MustCompile(`\bimplements\s+([\w.<>, ]+)`)
	colonBasesRe  = regexp.MustCompile(`(?:class|struct)\s+\w+\s*:\s*(.+?)(?:\s*\{|$)`)
	kotlinBasesRe = regexp.MustCompile(`class\s+\w+\s*(?:\([^)]*\))?\s*:\s*(.+?)(?:\s*\{|$)`)
	rubySuperclRe = regexp.MustCompile(`class\s+\w+\s*<\s*(\w+)`)
)

// extractInheritance captures base types and implemented interfaces from
// class-like declaration lines, normalized to a comma-joined string.
func extractInheritance(elements []*scan.Element, spec *lang.Spec) {
	for _, e := range elements {
		switch e.Kind {
		case lang.Class, lang.Struct, lang.Interface:
		default:
			continue
		}
		first := strings.TrimSpace(e.FirstLine())
		if inh := parseInheritance(first, spec.Key); inh != "" {
			e.Inherits = inh
		}
	}
}

func parseInheritance(first, key string) string {
	switch key {
	case "python":
		if m := pyBasesRe.FindStringSubmatch(first); m != nil {
			return strings.TrimSpace(m[1])
		}
	case "java", "typescript", "javascript":
		var parts []string
		if m := extendsRe.FindStringSubmatch(first); m != nil {
			parts = append(parts, strings.TrimSpace(m[1]))
		}
		if m := implementsRe.FindStringSubmatch(first); m != nil {
			parts = append(parts, strings.TrimSpace(m[1]))
		}
		return strings.Join(parts, ", ")
	case "cpp", "csharp", "swift":
		if m := colonBasesRe.FindStringSubmatch(first); m != nil {
			return strings.TrimSpace(m[1])
		}
	case "kotlin":
		if m := kotlinBasesRe.FindStringSubmatch(first); m != nil {
			return strings.TrimSpace(m[1])
		}
	case "ruby":
		if m := rubySuperclRe.FindStringSubmatch(first); m != nil {
			return m[1]
		}
	}
	return ""
}
