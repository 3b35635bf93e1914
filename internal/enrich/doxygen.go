package enrich

import (
	"regexp"
	"strings"

	"github.com/srcfold/srcfold/internal/scan"
)

// DoxygenTags lists supported tags in rendering order.
var DoxygenTags = []string{
	"brief", "details", "param", "param[in]", "param[out]",
	"return", "retval", "exception", "throws", "warning",
	"deprecated", "note", "see", "sa", "satisfies", "pre", "post",
}

var doxygenTagRe = buildDoxygenTagRe()

// buildDoxygenTagRe compiles the @tag / \tag matcher. Non-param tags are
// ordered longest first so that "param[in]" style lookalikes cannot be
// shadowed by shorter prefixes.
func buildDoxygenTagRe() *regexp.Regexp {
	var nonParam []string
	for _, tag := range DoxygenTags {
		if tag != "param" && tag != "param[in]" && tag != "param[out]" {
			nonParam = append(nonParam, tag)
		}
	}
	// Sort longest first.
	for i := range nonParam {
		for j := i + 1; j < len(nonParam); j++ {
			if len(nonParam[j]) > len(nonParam[i]) {
				nonParam[i], nonParam[j] = nonParam[j], nonParam[i]
			}
		}
	}
	for i, t := range nonParam {
		nonParam[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`[@\\](?:(param)(\[[^\]]+\])?|(` + strings.Join(nonParam, "|") + `))`)
}

var postfixMarkerRe = regexp.MustCompile(`^\s*(?:#|//+|--|/\*+|;+)!?<`)

// ParseDoxygenComment extracts recognized @tag fields from a comment
// block. Each tag's content runs until the next tag; repeated tags
// accumulate. Returns an empty map when no tags are present.
func ParseDoxygenComment(comment string) scan.DoxygenFields {
	if strings.TrimSpace(comment) == "" {
		return scan.DoxygenFields{}
	}
	text := strings.ReplaceAll(strings.ReplaceAll(comment, "\r\n", "\n"), "\r", "\n")
	text = stripCommentDelimiters(text)

	matches := doxygenTagRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return scan.DoxygenFields{}
	}

	fields := scan.DoxygenFields{}
	for i, m := range matches {
		tag := ""
		if m[2] >= 0 { // param group
			tag = "param"
			if m[4] >= 0 {
				tag += text[m[4]:m[5]]
			}
		} else {
			tag = text[m[6]:m[7]]
		}
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := normalizeWhitespace(strings.TrimSpace(text[start:end]))
		if content != "" {
			fields[tag] = append(fields[tag], content)
		}
	}
	return fields
}

// FormatDoxygenFields renders extracted fields as markdown bullets in
// the fixed DoxygenTags order.
func FormatDoxygenFields(fields scan.DoxygenFields) []string {
	var lines []string
	for _, tag := range DoxygenTags {
		if contents, ok := fields[tag]; ok {
			label := strings.ToUpper(tag[:1]) + tag[1:] + ":"
			lines = append(lines, "- "+label+" "+strings.Join(contents, " "))
		}
	}
	return lines
}

// extractDoxygenFields associates each definition with its doc comment
// and parses it. Association order: same-line postfix marker comment,
// nearest preceding standalone comment within two lines, then a
// following postfix standalone comment within two lines.
func extractDoxygenFields(elements []*scan.Element) {
	var comments []*scan.Element
	for _, e := range elements {
		if e.Kind.IsComment() {
			comments = append(comments, e)
		}
	}

	for _, e := range elements {
		if e.Kind.IsComment() {
			continue
		}

		var associated *scan.Element

		for _, c := range comments {
			if c.StartLine == e.EndLine && c.Inline() && postfixMarkerRe.MatchString(c.Excerpt) {
				if associated == nil || c.StartLine < associated.StartLine {
					associated = c
				}
			}
		}

		if associated == nil {
			for _, c := range comments {
				if c.Inline() || c.EndLine >= e.StartLine || e.StartLine-c.EndLine > 2 {
					continue
				}
				if associated == nil || c.EndLine > associated.EndLine ||
					(c.EndLine == associated.EndLine && c.StartLine > associated.StartLine) {
					associated = c
				}
			}
		}

		if associated == nil {
			for _, c := range comments {
				if c.Inline() || c.StartLine <= e.EndLine || c.StartLine-e.EndLine > 2 {
					continue
				}
				if !postfixMarkerRe.MatchString(c.Excerpt) {
					continue
				}
				if associated == nil || c.StartLine < associated.StartLine ||
					(c.StartLine == associated.StartLine && c.EndLine < associated.EndLine) {
					associated = c
				}
			}
		}

		if associated != nil {
			e.DoxygenFields = ParseDoxygenComment(associated.Excerpt)
		}
	}
}

var (
	leadMarkersRe = regexp.MustCompile(`^[/*#]+\s*`)
	leadStarRe    = regexp.MustCompile(`^\*\s*`)
	leadSlashRe   = regexp.MustCompile(`^///?!?\s*`)
	leadHashRe    = regexp.MustCompile(`^#+\s*`)
	multiSpaceRe  = regexp.MustCompile(` +`)
)

// stripCommentDelimiters removes comment syntax artifacts from a block
// while preserving its prose content.
func stripCommentDelimiters(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		switch s {
		case "/**", "/*", "*/", `"""`, "'''", "/*!", "///", "//!":
			continue
		}
		s = leadMarkersRe.ReplaceAllString(s, "")
		s = leadStarRe.ReplaceAllString(s, "")
		s = leadSlashRe.ReplaceAllString(s, "")
		s = leadHashRe.ReplaceAllString(s, "")
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, "\n")
}

// normalizeWhitespace collapses space runs and redundant blank lines.
func normalizeWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	var out []string
	prevBlank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if !prevBlank {
				out = append(out, line)
			}
			prevBlank = true
		} else {
			out = append(out, line)
			prevBlank = false
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
