package lang

import (
	"regexp"
	"sort"
)

// BlockStyle is the bracketing discipline used to find a block's end line.
type BlockStyle int

const (
	// BlockIndent delimits blocks by indentation depth (Python, Haskell).
	BlockIndent BlockStyle = iota
	// BlockBrace delimits blocks by balanced curly braces (C family).
	BlockBrace
	// BlockKeyword delimits blocks by a matching `end` keyword (Ruby,
	// Elixir, Lua).
	BlockKeyword
)

// Pattern pairs an element kind with the line regexp that recognizes it.
// Group 1 captures the full declaration prefix; group 2 (when present)
// captures the bare identifier.
type Pattern struct {
	Kind Kind
	Re   *regexp.Regexp
}

// Spec holds the declarative recognition rules for one language.
type Spec struct {
	// Key is the canonical lower-case language key ("cpp", "python").
	Key string
	// Name is the display name ("C++", "Python").
	Name string
	// SingleComment is the single-line comment prefix, or "" when the
	// language has none.
	SingleComment string
	// MultiStart/MultiEnd delimit multi-line comments, or "" when the
	// language has none.
	MultiStart string
	MultiEnd   string
	// StringDelims lists quote styles ordered longest first so that
	// triple quotes win over their single-quote prefixes.
	StringDelims []string
	// Style selects the block-extent discipline.
	Style BlockStyle
	// Patterns is the ordered recognition list; first match wins.
	Patterns []Pattern
	// IndentSignificant marks languages whose leading whitespace must
	// survive compression.
	IndentSignificant bool
}

// pat is a construction helper for the per-language tables.
func pat(kind Kind, expr string) Pattern {
	return Pattern{Kind: kind, Re: regexp.MustCompile(expr)}
}

// orderDelims sorts string delimiters longest first, in place, and
// returns the slice.
func orderDelims(delims []string) []string {
	sort.Slice(delims, func(i, j int) bool {
		return len(delims[i]) > len(delims[j])
	})
	return delims
}
