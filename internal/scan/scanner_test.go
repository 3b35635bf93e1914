package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcfold/srcfold/internal/lang"
)

// Test Plan for Scanner:
// - Python docstring plus function yields CommentMulti and Function with extents
// - Comment markers inside string literals are never reported
// - Block extents are stable for brace, indentation, and keyword nesting
// - Multi-line comments track start/end and re-enter code after the close
// - Shebang on line 1 is not a comment element
// - Empty and whitespace-only input yield no elements
// - Excerpts cap at five lines with an ellipsis marker
// - Aliases scan identically to canonical language names

func mustSpec(t *testing.T, name string) *lang.Spec {
	t.Helper()
	spec, err := lang.Default().Resolve(name)
	require.NoError(t, err)
	return spec
}

func TestScan_PythonDocstringAndFunction(t *testing.T) {
	t.Parallel()

	lines := []string{`"""doc"""`, "def f():", "    return 1"}
	elements := Scan(lines, mustSpec(t, "python"))

	require.Len(t, elements, 2)

	assert.Equal(t, lang.CommentMulti, elements[0].Kind)
	assert.Equal(t, 1, elements[0].StartLine)
	assert.Equal(t, 1, elements[0].EndLine)

	assert.Equal(t, lang.Function, elements[1].Kind)
	assert.Equal(t, "f", elements[1].Name)
	assert.Equal(t, 2, elements[1].StartLine)
	assert.Equal(t, 3, elements[1].EndLine)
}

func TestScan_CommentMarkerInsideString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		language string
		line     string
	}{
		{"python", `x = "# not a comment"`},
		{"c", `char *s = "// not a comment";`},
		{"go", `var s = "// still code"`},
		{"javascript", "const s = `// template ${x}`"},
		{"ruby", `s = "# nope"`},
		{"haskell", `s = "-- nope"`},
		{"lua", `local s = "-- nope"`},
	}
	for _, tc := range cases {
		elements := Scan([]string{tc.line}, mustSpec(t, tc.language))
		for _, e := range elements {
			assert.False(t, e.Kind.IsComment(),
				"%s: %q reported a comment element", tc.language, tc.line)
		}
	}
}

func TestScan_BraceNestingWithStringBrace(t *testing.T) {
	t.Parallel()

	lines := []string{
		"int main(void) {",
		"    if (x) {",
		`        char *s = "{";`,
		"    }",
		"    return 0;",
		"}",
	}
	elements := Scan(lines, mustSpec(t, "c"))

	require.NotEmpty(t, elements)
	fn := elements[0]
	assert.Equal(t, lang.Function, fn.Kind)
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, 1, fn.StartLine)
	assert.Equal(t, 6, fn.EndLine)
}

func TestScan_IndentNestingPython(t *testing.T) {
	t.Parallel()

	lines := []string{
		"def outer():",
		"    def inner():",
		"        return 1",
		"    return inner",
	}
	elements := Scan(lines, mustSpec(t, "python"))

	require.Len(t, elements, 2)
	assert.Equal(t, "outer", elements[0].Name)
	assert.Equal(t, 1, elements[0].StartLine)
	assert.Equal(t, 4, elements[0].EndLine)
	assert.Equal(t, "inner", elements[1].Name)
	assert.Equal(t, 2, elements[1].StartLine)
	assert.Equal(t, 3, elements[1].EndLine)
}

func TestScan_KeywordNestingRuby(t *testing.T) {
	t.Parallel()

	lines := []string{
		"def greet(list)",
		"  list.each do |x|",
		"    puts x",
		"  end",
		"  nil",
		"end",
	}
	elements := Scan(lines, mustSpec(t, "ruby"))

	require.Len(t, elements, 1)
	assert.Equal(t, lang.Function, elements[0].Kind)
	assert.Equal(t, "greet", elements[0].Name)
	assert.Equal(t, 1, elements[0].StartLine)
	assert.Equal(t, 6, elements[0].EndLine)
}

func TestScan_MultiLineCommentSpanAndReentry(t *testing.T) {
	t.Parallel()

	lines := []string{
		"/* start",
		"   middle",
		"   end */ int x = 1;",
	}
	elements := Scan(lines, mustSpec(t, "c"))

	require.NotEmpty(t, elements)
	assert.Equal(t, lang.CommentMulti, elements[0].Kind)
	assert.Equal(t, 1, elements[0].StartLine)
	assert.Equal(t, 3, elements[0].EndLine)

	// The code remainder after the close is scanned as a fresh fragment.
	require.Len(t, elements, 2)
	assert.Equal(t, lang.Variable, elements[1].Kind)
	assert.Equal(t, "x", elements[1].Name)
	assert.Equal(t, 3, elements[1].StartLine)
}

func TestScan_ShebangNotAComment(t *testing.T) {
	t.Parallel()

	lines := []string{
		"#!/usr/bin/env python3",
		"# a real comment",
		"def f():",
		"    pass",
	}
	elements := Scan(lines, mustSpec(t, "python"))

	require.Len(t, elements, 2)
	assert.Equal(t, lang.CommentSingle, elements[0].Kind)
	assert.Equal(t, 2, elements[0].StartLine)
	assert.Equal(t, lang.Function, elements[1].Kind)
}

func TestScan_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, lines := range [][]string{
		{},
		{""},
		{"   ", "\t"},
	} {
		elements := Scan(lines, mustSpec(t, "go"))
		assert.Empty(t, elements)
	}
}

func TestScan_ExcerptCap(t *testing.T) {
	t.Parallel()

	lines := []string{
		"def long():",
		"    a = 1",
		"    b = 2",
		"    c = 3",
		"    d = 4",
		"    e = 5",
		"    return a",
	}
	elements := Scan(lines, mustSpec(t, "python"))

	require.Len(t, elements, 1)
	excerpt := strings.Split(elements[0].Excerpt, "\n")
	require.Len(t, excerpt, 5)
	assert.Equal(t, "    ...", excerpt[4])
}

func TestScan_InlineComment(t *testing.T) {
	t.Parallel()

	lines := []string{"def f():  # trailing note", "    pass"}
	elements := Scan(lines, mustSpec(t, "python"))

	require.Len(t, elements, 2)
	assert.Equal(t, lang.CommentSingle, elements[0].Kind)
	assert.True(t, elements[0].Inline())
	assert.Equal(t, lang.Function, elements[1].Kind)
	assert.Equal(t, "f", elements[1].Name)
}

func TestScan_AliasIdentical(t *testing.T) {
	t.Parallel()

	lines := []string{
		"class Greeter",
		"  def hello",
		"    puts 'hi'",
		"  end",
		"end",
	}
	canonical := Scan(lines, mustSpec(t, "ruby"))
	aliased := Scan(lines, mustSpec(t, "RB"))
	assert.Equal(t, canonical, aliased)
}
