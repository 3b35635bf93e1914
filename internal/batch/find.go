package batch

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/srcfold/srcfold/internal/enrich"
	"github.com/srcfold/srcfold/internal/scan"
)

// ErrNoMatches signals that a construct search produced no output.
var ErrNoMatches = errors.New("no constructs matched")

// languageTags lists the element labels meaningfully searchable per
// language. A file is skipped when its language supports none of the
// requested tags.
var languageTags = map[string][]string{
	"python":     {"CLASS", "FUNCTION", "DECORATOR", "IMPORT", "VARIABLE"},
	"c":          {"STRUCT", "UNION", "ENUM", "TYPEDEF", "MACRO", "FUNCTION", "IMPORT", "VARIABLE"},
	"cpp":        {"CLASS", "STRUCT", "ENUM", "NAMESPACE", "FUNCTION", "MACRO", "IMPORT", "TYPE_ALIAS"},
	"rust":       {"FUNCTION", "STRUCT", "ENUM", "TRAIT", "IMPL", "MODULE", "MACRO", "CONSTANT", "TYPE_ALIAS", "IMPORT", "DECORATOR"},
	"javascript": {"CLASS", "FUNCTION", "COMPONENT", "CONSTANT", "IMPORT", "MODULE"},
	"typescript": {"INTERFACE", "TYPE_ALIAS", "ENUM", "CLASS", "FUNCTION", "NAMESPACE", "MODULE", "IMPORT", "DECORATOR"},
	"java":       {"CLASS", "INTERFACE", "ENUM", "FUNCTION", "IMPORT", "MODULE", "DECORATOR", "CONSTANT"},
	"go":         {"FUNCTION", "METHOD", "STRUCT", "INTERFACE", "TYPE_ALIAS", "CONSTANT", "IMPORT", "MODULE"},
	"ruby":       {"CLASS", "MODULE", "FUNCTION", "CONSTANT", "IMPORT", "DECORATOR"},
	"php":        {"CLASS", "INTERFACE", "TRAIT", "FUNCTION", "NAMESPACE", "IMPORT", "CONSTANT"},
	"swift":      {"CLASS", "STRUCT", "ENUM", "PROTOCOL", "EXTENSION", "FUNCTION", "IMPORT", "CONSTANT", "VARIABLE"},
	"kotlin":     {"CLASS", "INTERFACE", "ENUM", "FUNCTION", "CONSTANT", "VARIABLE", "MODULE", "IMPORT", "DECORATOR"},
	"scala":      {"CLASS", "TRAIT", "MODULE", "FUNCTION", "CONSTANT", "VARIABLE", "TYPE_ALIAS", "IMPORT"},
	"lua":        {"FUNCTION", "VARIABLE"},
	"shell":      {"FUNCTION", "VARIABLE", "IMPORT"},
	"perl":       {"FUNCTION", "MODULE", "IMPORT", "CONSTANT"},
	"haskell":    {"MODULE", "TYPE_ALIAS", "STRUCT", "CLASS", "FUNCTION", "IMPORT"},
	"zig":        {"FUNCTION", "STRUCT", "ENUM", "UNION", "CONSTANT", "VARIABLE", "IMPORT"},
	"elixir":     {"MODULE", "FUNCTION", "PROTOCOL", "IMPL", "STRUCT", "IMPORT"},
	"csharp":     {"CLASS", "INTERFACE", "STRUCT", "ENUM", "NAMESPACE", "FUNCTION", "PROPERTY", "IMPORT", "DECORATOR", "CONSTANT"},
}

// AvailableTags formats the supported tags per language, one line each.
func AvailableTags() string {
	keys := make([]string, 0, len(languageTags))
	for k := range languageTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		tags := append([]string(nil), languageTags[key]...)
		sort.Strings(tags)
		lines = append(lines, fmt.Sprintf("- %s: %s",
			strings.ToUpper(key[:1])+key[1:], strings.Join(tags, ", ")))
	}
	return strings.Join(lines, "\n")
}

// ParseTagFilter splits a pipe-separated tag list into a normalized set.
func ParseTagFilter(filter string) map[string]bool {
	set := map[string]bool{}
	for _, tag := range strings.Split(filter, "|") {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag != "" {
			set[tag] = true
		}
	}
	return set
}

func supportsAnyTag(langKey string, tags map[string]bool) bool {
	for _, t := range languageTags[langKey] {
		if tags[t] {
			return true
		}
	}
	return false
}

// FindConstructs searches the inputs for definitions whose kind label
// is in the pipe-separated tagFilter and whose name matches the
// namePattern regexp, emitting each hit with its complete source range.
func FindConstructs(fsys afero.Fs, paths []string, tagFilter, namePattern string, numbered bool, rep *Reporter) (string, error) {
	tags := ParseTagFilter(tagFilter)
	if len(tags) == 0 {
		return "", fmt.Errorf("no valid tags in filter %q; available tags by language:\n%s",
			tagFilter, AvailableTags())
	}
	nameRe, err := regexp.Compile(namePattern)
	if err != nil {
		return "", fmt.Errorf("invalid name pattern: %w", err)
	}

	rep.Start(len(paths))
	defer rep.Done()

	var parts []string
	total := 0
	for _, path := range paths {
		src, ok, _ := loadSource(fsys, path, rep)
		if !ok {
			continue
		}
		if !supportsAnyTag(src.spec.Key, tags) {
			rep.Skip(path, fmt.Sprintf("language %s does not support any requested tags", src.spec.Key))
			continue
		}

		elements := scan.Scan(src.lines, src.spec)
		enrich.Enrich(elements, src.spec, src.lines)

		var matches []*scan.Element
		for _, e := range elements {
			if tags[e.Kind.Label()] && e.Name != "" && nameRe.MatchString(e.Name) {
				matches = append(matches, e)
			}
		}
		if len(matches) == 0 {
			rep.Skip(path, "no matches")
			continue
		}

		blocks := make([]string, len(matches))
		for i, m := range matches {
			blocks[i] = formatConstruct(m, src.lines, numbered)
		}
		parts = append(parts, fmt.Sprintf("@@@ %s | %s\n\n%s",
			path, src.spec.Key, strings.Join(blocks, "\n\n")))
		total += len(matches)
		rep.OKDetail(path, fmt.Sprintf("%d matches", len(matches)))
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("%w; available tags by language:\n%s", ErrNoMatches, AvailableTags())
	}
	return strings.Join(parts, "\n\n"), nil
}

// formatConstruct renders one hit with its full, untruncated code.
func formatConstruct(e *scan.Element, lines []string, numbered bool) string {
	var out []string
	out = append(out, fmt.Sprintf("### %s: `%s`", e.Kind.Label(), e.Name))
	if e.Signature != "" {
		out = append(out, fmt.Sprintf("- Signature: `%s`", e.Signature))
	}
	out = append(out, fmt.Sprintf("- Lines: %d-%d", e.StartLine, e.EndLine))

	var code []string
	for i := e.StartLine; i <= e.EndLine && i <= len(lines); i++ {
		text := strings.TrimRight(lines[i-1], " \t")
		if numbered {
			text = fmt.Sprintf("L%d> %s", i, text)
		}
		code = append(code, text)
	}

	out = append(out, "```", strings.Join(code, "\n"), "```")
	return strings.Join(out, "\n")
}
