package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for string-context detection:
// - Positions inside and outside quoted regions are classified correctly
// - Escaped delimiters (odd backslash runs) do not close strings
// - Longest delimiter wins (triple quotes before single quotes)
// - FindComment skips markers inside strings and honors escapes

func TestInStringContext(t *testing.T) {
	t.Parallel()

	py := mustSpec(t, "python")
	c := mustSpec(t, "c")

	line := `x = "hello" + y`
	assert.False(t, InStringContext(line, 0, py))  // x
	assert.True(t, InStringContext(line, 6, py))   // h
	assert.False(t, InStringContext(line, 12, py)) // +

	// Escaped quote keeps the string open; double backslash closes it.
	esc := `s = "a\"b" + t`
	assert.True(t, InStringContext(esc, 8, py)) // b, after escaped quote
	dbl := `s = "a\\" + t`
	assert.False(t, InStringContext(dbl, 10, py)) // +, string closed

	// Triple quotes are matched before single quotes.
	triple := `x = """py # text""" + 1`
	assert.True(t, InStringContext(triple, 10, py))
	assert.False(t, InStringContext(triple, 20, py))

	// Character literals count as strings in C.
	ch := `char c = '{';`
	assert.True(t, InStringContext(ch, 10, c))
}

func TestFindComment(t *testing.T) {
	t.Parallel()

	py := mustSpec(t, "python")
	c := mustSpec(t, "c")
	hs := mustSpec(t, "haskell")

	assert.Equal(t, 0, FindComment("# leading", py))
	assert.Equal(t, 6, FindComment("x = 1 # trailing", py))
	assert.Equal(t, -1, FindComment(`x = "# inside"`, py))
	assert.Equal(t, -1, FindComment("x = 1", py))

	assert.Equal(t, 7, FindComment("int x; // c note", c))
	assert.Equal(t, -1, FindComment(`s = "//url"; `, c))

	assert.Equal(t, 6, FindComment("x = 1 -- note", hs))
	assert.Equal(t, -1, FindComment(`s = "a -- b"`, hs))
}
