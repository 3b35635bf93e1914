package scan

import (
	"regexp"
	"strings"

	"github.com/srcfold/srcfold/internal/lang"
)

// Lookahead limits bound the block-extent search so that a pathological
// file cannot push a single element's resolution past linear time.
const (
	indentLookahead        = 200
	indentLookaheadHaskell = 100
	braceLookahead         = 300
	keywordLookahead       = 200
)

// blockEnd resolves the 1-based end line of a block opened at startIdx
// (0-based) using the spec's bracketing discipline. When no block
// structure is found the element degenerates to its opening line.
func blockEnd(lines []string, startIdx int, spec *lang.Spec) int {
	switch spec.Style {
	case lang.BlockIndent:
		limit := indentLookahead
		if spec.Key == "haskell" {
			limit = indentLookaheadHaskell
		}
		return indentBlockEnd(lines, startIdx, limit)
	case lang.BlockBrace:
		return braceBlockEnd(lines, startIdx, spec)
	case lang.BlockKeyword:
		return keywordBlockEnd(lines, startIdx, spec)
	}
	return startIdx + 1
}

// indentBlockEnd scans forward while non-blank lines are indented more
// deeply than the opener. Trailing blank lines are not part of the block.
func indentBlockEnd(lines []string, startIdx, limit int) int {
	opener := lines[startIdx]
	indent := indentWidth(opener)
	end := startIdx + 1
	last := startIdx + 1 // 1-based line of the last in-block content
	for end < len(lines) && end < startIdx+limit {
		line := strings.TrimRight(lines[end], "\r\n")
		if strings.TrimSpace(line) == "" {
			end++
			continue
		}
		if indentWidth(line) <= indent {
			break
		}
		last = end + 1
		end++
	}
	return last
}

// braceBlockEnd counts braces, skipping characters inside strings and
// comments on each scanned line, until depth returns to zero.
func braceBlockEnd(lines []string, startIdx int, spec *lang.Spec) int {
	depth := 0
	foundOpen := false
	end := startIdx
	for end < len(lines) && end < startIdx+braceLookahead {
		line := strings.TrimRight(lines[end], "\r\n")
		// Braces behind a comment marker or inside a string do not count.
		if c := FindComment(line, spec); c >= 0 {
			line = line[:c]
		}
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '{':
				if !InStringContext(line, i, spec) {
					depth++
					foundOpen = true
				}
			case '}':
				if !InStringContext(line, i, spec) {
					depth--
				}
			}
		}
		if foundOpen && depth <= 0 {
			return end + 1
		}
		end++
	}
	if !foundOpen {
		return startIdx + 1
	}
	if end >= len(lines) {
		return len(lines)
	}
	return end
}

var (
	keywordOpenRe = map[string]*regexp.Regexp{
		"ruby":   regexp.MustCompile(`^\s*(?:def|class|module|if|unless|while|until|for|begin|case)\b`),
		"elixir": regexp.MustCompile(`^\s*(?:defmodule|defprotocol|defimpl|def|defp|defmacro|defmacrop|if|unless|case|cond|for|receive|try)\b`),
		"lua":    regexp.MustCompile(`^\s*(?:(?:local\s+)?function|if|for|while|do)\b`),
	}
	trailingDoRe = regexp.MustCompile(`\bdo\s*(?:\|[^|]*\|\s*)?$`)
	endLineRe    = regexp.MustCompile(`^\s*end\b`)
	inlineDoRe   = regexp.MustCompile(`\bdo:\s`)
)

// keywordBlockEnd matches nested block-opening keywords against `end`
// keywords. The opener itself counts as depth one; the block closes on
// the line whose `end` brings the count back to zero.
func keywordBlockEnd(lines []string, startIdx int, spec *lang.Spec) int {
	openRe := keywordOpenRe[spec.Key]
	opener := strings.TrimRight(lines[startIdx], "\r\n")
	// Inline forms (`def foo, do: :ok`) never open a block.
	if spec.Key == "elixir" && inlineDoRe.MatchString(opener) {
		return startIdx + 1
	}
	// Lines that neither start with a block keyword nor end with `do`
	// (e.g. `defstruct [:a, :b]`) do not open a block at all.
	if (openRe == nil || !openRe.MatchString(opener)) && !trailingDoRe.MatchString(opener) {
		return startIdx + 1
	}
	depth := 1
	end := startIdx + 1
	for end < len(lines) && end < startIdx+keywordLookahead {
		line := strings.TrimRight(lines[end], "\r\n")
		code := line
		if c := FindComment(line, spec); c >= 0 {
			code = line[:c]
		}
		opens := 0
		if openRe != nil && openRe.MatchString(code) {
			if !(spec.Key == "elixir" && inlineDoRe.MatchString(code)) {
				opens++
			}
		} else if trailingDoRe.MatchString(strings.TrimRight(code, " \t")) {
			opens++
		}
		if endLineRe.MatchString(code) {
			depth--
			if depth == 0 {
				return end + 1
			}
		}
		depth += opens
		end++
	}
	return startIdx + 1
}

// indentWidth counts leading whitespace characters.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
