// Package render turns scanned elements into human and LLM friendly
// text: a compact markdown view with a symbol index, and a verbose
// structured listing.
package render

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/srcfold/srcfold/internal/enrich"
	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/scan"
)

// FileInfo carries per-file metadata for the markdown header.
type FileInfo struct {
	Path       string
	Language   string // registry key, e.g. "python"
	LangName   string // display name, e.g. "Python"
	TotalLines int
}

func isDefinition(k lang.Kind) bool {
	return !k.IsComment() && k != lang.Import && k != lang.Decorator
}

func inlineKind(k lang.Kind) bool {
	switch k {
	case lang.Constant, lang.Variable, lang.TypeAlias, lang.Typedef,
		lang.Macro, lang.Property:
		return true
	}
	return false
}

func indexedSignature(k lang.Kind) bool {
	switch k {
	case lang.Function, lang.Method, lang.Class, lang.Struct,
		lang.Trait, lang.Interface, lang.Impl, lang.Enum:
		return true
	}
	return false
}

func truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// commentMaps associates comments with the definitions they document.
type commentMaps struct {
	docForDef  map[int][]*scan.Element // definition start line -> preceding comments
	standalone []*scan.Element
	fileDesc   string
}

// buildCommentMaps attaches each standalone comment to the definition
// starting within two lines after it. The first comment near the top
// of the file becomes the file description instead.
func buildCommentMaps(elements []*scan.Element) commentMaps {
	m := commentMaps{docForDef: map[int][]*scan.Element{}}

	defStarts := map[int]bool{}
	importStarts := map[int]bool{}
	for _, e := range elements {
		if isDefinition(e.Kind) {
			defStarts[e.StartLine] = true
		}
		if e.Kind == lang.Import {
			importStarts[e.StartLine] = true
		}
	}

	var comments []*scan.Element
	for _, e := range sortedByStart(elements) {
		if e.Kind.IsComment() {
			comments = append(comments, e)
		}
	}

	for _, c := range comments {
		if c.StartLine > 10 {
			break
		}
		text := enrich.CommentText(c, 0)
		if text == "" || strings.HasPrefix(text, "/usr/") || strings.HasPrefix(text, "usr/") {
			continue
		}
		m.fileDesc = truncate(text, 200)
		break
	}

	for i, c := range comments {
		if c.Inline() {
			continue
		}
		attached := false
		for gap := 1; gap <= 3; gap++ {
			target := c.EndLine + gap
			if defStarts[target] {
				m.docForDef[target] = append(m.docForDef[target], c)
				attached = true
				break
			}
			if importStarts[target] {
				break
			}
		}
		if attached {
			continue
		}
		if i != 0 || m.fileDesc == "" {
			m.standalone = append(m.standalone, c)
		}
	}
	return m
}

func sortedByStart(elements []*scan.Element) []*scan.Element {
	out := make([]*scan.Element, len(elements))
	copy(out, elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartLine < out[j].StartLine
	})
	return out
}

type lineRange struct{ start, end int }

// renderBodyAnnotations merges body comments and exit points in line
// order. A comment and exit point on the same line fold into one
// entry showing the exit code with the comment as context. Lines
// inside exclude ranges belong to child definitions and are skipped.
func renderBodyAnnotations(out *[]string, e *scan.Element, indent string, exclude []lineRange) {
	commentAt := map[int]scan.BodyComment{}
	for _, bc := range e.BodyComments {
		commentAt[bc.Start] = bc
	}
	exitAt := map[int]string{}
	for _, ep := range e.ExitPoints {
		exitAt[ep.Line] = ep.Code
	}

	lineSet := map[int]bool{}
	for l := range commentAt {
		lineSet[l] = true
	}
	for l := range exitAt {
		lineSet[l] = true
	}
	var all []int
	for l := range lineSet {
		all = append(all, l)
	}
	sort.Ints(all)

	for _, line := range all {
		skip := false
		for _, r := range exclude {
			if r.start <= line && line <= r.end {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		bc, hasComment := commentAt[line]
		code, hasExit := exitAt[line]
		switch {
		case hasComment && hasExit:
			clean := code
			if idx := strings.Index(clean, "#"); idx >= 0 {
				clean = strings.TrimSpace(clean[:idx])
			} else if idx := strings.Index(clean, "//"); idx >= 0 {
				clean = strings.TrimSpace(clean[:idx])
			}
			*out = append(*out, fmt.Sprintf("%sL%d> `%s` — %s", indent, line, clean, bc.Text))
		case hasExit:
			*out = append(*out, fmt.Sprintf("%sL%d> `%s`", indent, line, code))
		default:
			if bc.Start == bc.End {
				*out = append(*out, fmt.Sprintf("%sL%d> %s", indent, bc.Start, bc.Text))
			} else {
				*out = append(*out, fmt.Sprintf("%sL%d-%d> %s", indent, bc.Start, bc.End, bc.Text))
			}
		}
	}
}

// Markdown formats one file's analysis as compact markdown: header,
// imports block, hierarchical definitions with doc comments and body
// annotations, standalone comments, and a symbol index table.
func Markdown(elements []*scan.Element, info FileInfo) string {
	var out []string
	fname := filepath.Base(info.Path)

	nDefs, nImports, nComments := 0, 0, 0
	for _, e := range elements {
		switch {
		case isDefinition(e.Kind):
			nDefs++
		case e.Kind == lang.Import:
			nImports++
		case e.Kind.IsComment() && !e.Inline():
			nComments++
		}
	}

	maps := buildCommentMaps(elements)

	out = append(out, fmt.Sprintf("# %s | %s | %dL | %d symbols | %d imports | %d comments",
		fname, info.LangName, info.TotalLines, nDefs, nImports, nComments))
	out = append(out, fmt.Sprintf("> Path: `%s`", info.Path))
	if maps.fileDesc != "" {
		out = append(out, "> "+maps.fileDesc)
	}
	out = append(out, "")

	var imports []*scan.Element
	for _, e := range sortedByStart(elements) {
		if e.Kind == lang.Import {
			imports = append(imports, e)
		}
	}
	if len(imports) > 0 {
		out = append(out, "## Imports", "```")
		for _, imp := range imports {
			out = append(out, strings.TrimSpace(imp.FirstLine()))
		}
		out = append(out, "```", "")
	}

	decorators := map[int]string{}
	for _, e := range elements {
		if e.Kind == lang.Decorator {
			decorators[e.StartLine] = strings.TrimSpace(e.FirstLine())
		}
	}

	var defs []*scan.Element
	for _, e := range sortedByStart(elements) {
		if isDefinition(e.Kind) {
			defs = append(defs, e)
		}
	}

	var topLevel []*scan.Element
	for _, e := range defs {
		if e.Depth == 0 {
			topLevel = append(topLevel, e)
		}
	}
	children := map[*scan.Element][]*scan.Element{}
	for _, e := range defs {
		if e.Depth == 0 || e.ParentName == "" {
			continue
		}
		for _, top := range topLevel {
			if top.Name == e.ParentName && top.StartLine <= e.StartLine && top.EndLine >= e.EndLine {
				children[top] = append(children[top], e)
				break
			}
		}
	}

	if len(topLevel) > 0 {
		out = append(out, "## Definitions", "")

		for _, e := range topLevel {
			kind := e.Kind.Short()
			sig := e.Signature
			if sig == "" {
				sig = e.Name
			}
			loc := e.Location()
			inheritStr := ""
			if e.Inherits != "" {
				inheritStr = " : " + e.Inherits
			}
			visStr := ""
			if e.Visibility != "" && e.Visibility != "pub" && e.Visibility != "public" {
				visStr = fmt.Sprintf(" `%s`", e.Visibility)
			}
			decStr := ""
			if dec, ok := decorators[e.StartLine-1]; ok {
				decStr = fmt.Sprintf(" `%s`", dec)
			}

			docs := maps.docForDef[e.StartLine]
			docText := ""
			var docLines []string
			docLineNum := 0
			var doxygenMD []string

			if len(e.DoxygenFields) > 0 {
				doxygenMD = enrich.FormatDoxygenFields(e.DoxygenFields)
				if briefs, ok := e.DoxygenFields["brief"]; ok {
					docText = truncate(briefs[0], 150)
				}
			} else if len(docs) > 0 {
				docLines = enrich.CommentLines(docs[0])
				docText = truncate(strings.Join(docLines, " "), 150)
				docLineNum = docs[0].StartLine
			}

			if inlineKind(e.Kind) || e.StartLine == e.EndLine {
				line := fmt.Sprintf("- %s `%s`%s (L%d)", kind, strings.TrimSpace(e.FirstLine()), visStr, e.StartLine)
				if docText != "" && len(e.DoxygenFields) == 0 {
					line += " — " + docText
				}
				out = append(out, line)
				out = append(out, doxygenMD...)
				continue
			}

			if e.Kind == lang.Impl {
				sig = strings.TrimRight(strings.TrimSpace(e.FirstLine()), " {")
			}

			out = append(out, fmt.Sprintf("### %s `%s`%s%s%s (%s)", kind, sig, inheritStr, visStr, decStr, loc))

			switch {
			case len(doxygenMD) > 0:
				out = append(out, doxygenMD...)
			case len(docLines) > 1:
				shown := docLines
				if len(shown) > 5 {
					shown = shown[:5]
				}
				for idx, dl := range shown {
					out = append(out, fmt.Sprintf("L%d> %s", docLineNum+idx, dl))
				}
				if len(docLines) > 5 {
					out = append(out, fmt.Sprintf("L%d> ...", docLineNum+5))
				}
			case docText != "" && docLineNum > 0:
				out = append(out, fmt.Sprintf("L%d> %s", docLineNum, docText))
			}

			kids := children[e]
			var exclude []lineRange
			for _, c := range kids {
				start := c.StartLine
				if cDocs := maps.docForDef[c.StartLine]; len(cDocs) > 0 && cDocs[0].StartLine < start {
					start = cDocs[0].StartLine
				}
				exclude = append(exclude, lineRange{start, c.EndLine})
			}
			renderBodyAnnotations(&out, e, "", exclude)

			sort.SliceStable(kids, func(i, j int) bool {
				return kids[i].StartLine < kids[j].StartLine
			})
			for _, child := range kids {
				childSig := child.Signature
				if childSig == "" {
					childSig = child.Name
				}
				childVis := ""
				if child.Visibility != "" && child.Visibility != "pub" && child.Visibility != "public" {
					childVis = fmt.Sprintf(" `%s`", child.Visibility)
				}
				childDoc, childDocLn := "", ""
				var childDoxygen []string
				if len(child.DoxygenFields) > 0 {
					childDoxygen = enrich.FormatDoxygenFields(child.DoxygenFields)
				} else if cDocs := maps.docForDef[child.StartLine]; len(cDocs) > 0 {
					if t := enrich.CommentText(cDocs[0], 100); t != "" {
						childDocLn = fmt.Sprintf(" L%d>", cDocs[0].StartLine)
						childDoc = " " + t
					}
				}
				out = append(out, fmt.Sprintf("- %s `%s`%s (%s)%s%s",
					child.Kind.Short(), childSig, childVis, child.Location(), childDocLn, childDoc))
				for _, l := range childDoxygen {
					out = append(out, "  "+l)
				}
				renderBodyAnnotations(&out, child, "  ", nil)
			}

			out = append(out, "")
		}
	}

	if len(maps.standalone) > 0 {
		out = append(out, "## Comments")
		groups := groupComments(maps.standalone)
		for _, group := range groups {
			if len(group) == 1 {
				c := group[0]
				if text := enrich.CommentText(c, 150); text != "" {
					out = append(out, fmt.Sprintf("- L%d: %s", c.StartLine, text))
				}
				continue
			}
			var texts []string
			for _, c := range group {
				if t := enrich.CommentText(c, 100); t != "" {
					texts = append(texts, t)
				}
			}
			if len(texts) > 0 {
				out = append(out, fmt.Sprintf("- L%d-%d: %s",
					group[0].StartLine, group[len(group)-1].EndLine, strings.Join(texts, " | ")))
			}
		}
		out = append(out, "")
	}

	var indexable []*scan.Element
	for _, e := range sortedByStart(elements) {
		if isDefinition(e.Kind) {
			indexable = append(indexable, e)
		}
	}
	if len(indexable) > 0 {
		out = append(out, "## Symbol Index", "|Symbol|Kind|Vis|Lines|Sig|", "|---|---|---|---|---|")
		for _, e := range indexable {
			name := e.Name
			if name == "" {
				name = "?"
			}
			if e.ParentName != "" {
				name = e.ParentName + "." + name
			}
			loc := fmt.Sprintf("%d", e.StartLine)
			if e.StartLine != e.EndLine {
				loc = fmt.Sprintf("%d-%d", e.StartLine, e.EndLine)
			}
			sig := ""
			if indexedSignature(e.Kind) && e.Signature != "" && e.Signature != e.Name {
				sig = e.Signature
				if len(sig) > 60 {
					sig = sig[:57] + "..."
				}
			}
			out = append(out, fmt.Sprintf("|`%s`|%s|%s|%s|%s|", name, e.Kind.Short(), e.Visibility, loc, sig))
		}
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}

// groupComments clusters standalone comments lying within two lines of
// each other into region blocks.
func groupComments(comments []*scan.Element) [][]*scan.Element {
	var groups [][]*scan.Element
	current := []*scan.Element{comments[0]}
	for _, c := range comments[1:] {
		prev := current[len(current)-1]
		if c.StartLine <= prev.EndLine+2 {
			current = append(current, c)
		} else {
			groups = append(groups, current)
			current = []*scan.Element{c}
		}
	}
	return append(groups, current)
}
