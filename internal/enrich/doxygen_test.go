package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcfold/srcfold/internal/scan"
)

// Test Plan for Doxygen extraction:
// - ParseDoxygenComment extracts @tag and \tag fields, accumulating repeats
// - Comment delimiters and column markers are stripped from content
// - Text without tags yields an empty field map
// - FormatDoxygenFields renders bullets in fixed tag order
// - A preceding block comment within two lines is associated with a definition
// - Same-line postfix markers (#!<, //!<) bind to the construct on that line

func TestParseDoxygenComment(t *testing.T) {
	t.Parallel()

	fields := ParseDoxygenComment(`/*
 @brief Adds numbers.
 @param a left operand
 @param b right operand
 @return the sum
*/`)
	require.Contains(t, fields, "brief")
	assert.Equal(t, []string{"Adds numbers."}, fields["brief"])
	assert.Equal(t, []string{"a left operand", "b right operand"}, fields["param"])
	assert.Equal(t, []string{"the sum"}, fields["return"])
}

func TestParseDoxygenComment_BackslashAndDirectional(t *testing.T) {
	t.Parallel()

	fields := ParseDoxygenComment(`\brief Short form.
@param[in] src input buffer
@param[out] dst output buffer`)
	assert.Equal(t, []string{"Short form."}, fields["brief"])
	assert.Equal(t, []string{"src input buffer"}, fields["param[in]"])
	assert.Equal(t, []string{"dst output buffer"}, fields["param[out]"])
}

func TestParseDoxygenComment_NoTags(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseDoxygenComment("just a plain comment"))
	assert.Empty(t, ParseDoxygenComment(""))
	assert.Empty(t, ParseDoxygenComment("   "))
}

func TestFormatDoxygenFields(t *testing.T) {
	t.Parallel()

	fields := scan.DoxygenFields{
		"return": {"the sum"},
		"brief":  {"Adds numbers."},
		"param":  {"a left operand", "b right operand"},
	}
	lines := FormatDoxygenFields(fields)
	require.Len(t, lines, 3)
	assert.Equal(t, "- Brief: Adds numbers.", lines[0])
	assert.Equal(t, "- Param: a left operand b right operand", lines[1])
	assert.Equal(t, "- Return: the sum", lines[2])
}

func TestDoxygenAssociation_PrecedingBlock(t *testing.T) {
	t.Parallel()

	elements := analyze(t, "c", []string{
		"/*",
		" @brief Adds numbers.",
		" @param a left operand",
		" @return the sum",
		"*/",
		"int add(int a, int b) {",
		"    return a + b;",
		"}",
	})

	var fn *scan.Element
	for _, e := range elements {
		if e.Name == "add" {
			fn = e
		}
	}
	require.NotNil(t, fn)
	require.NotEmpty(t, fn.DoxygenFields)
	assert.Equal(t, []string{"Adds numbers."}, fn.DoxygenFields["brief"])
	assert.Equal(t, []string{"a left operand"}, fn.DoxygenFields["param"])
	assert.Equal(t, []string{"the sum"}, fn.DoxygenFields["return"])
}

func TestDoxygenAssociation_SameLinePostfix(t *testing.T) {
	t.Parallel()

	elements := analyze(t, "python", []string{
		"MAX_SIZE = 10  #!< @brief Maximum buffer size.",
	})

	var v *scan.Element
	for _, e := range elements {
		if e.Name == "MAX_SIZE" {
			v = e
		}
	}
	require.NotNil(t, v)
	assert.Equal(t, []string{"Maximum buffer size."}, v.DoxygenFields["brief"])
}
