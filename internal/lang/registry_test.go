package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Registry:
// - All 20 languages resolve under their canonical key
// - Aliases, uppercase tokens, and dotted extensions resolve to the same spec
// - Unknown tokens return ErrUnsupportedLanguage with the supported list
// - DetectPath resolves specs from file extensions
// - Languages and Specs are sorted and stable

func TestRegistry_ResolveCanonical(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, key := range []string{
		"c", "cpp", "csharp", "elixir", "go", "haskell", "java",
		"javascript", "kotlin", "lua", "perl", "php", "python",
		"ruby", "rust", "scala", "shell", "swift", "typescript", "zig",
	} {
		spec, err := reg.Resolve(key)
		require.NoError(t, err, key)
		assert.Equal(t, key, spec.Key)
	}
}

func TestRegistry_ResolveAliases(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	cases := map[string]string{
		"py":   "python",
		"js":   "javascript",
		"ts":   "typescript",
		"rs":   "rust",
		"rb":   "ruby",
		"hs":   "haskell",
		"cc":   "cpp",
		"cxx":  "cpp",
		"hpp":  "cpp",
		"h":    "c",
		"kt":   "kotlin",
		"ex":   "elixir",
		"exs":  "elixir",
		"pl":   "perl",
		"cs":   "csharp",
		"sh":   "shell",
		"bash": "shell",
		"zsh":  "shell",
	}
	for alias, want := range cases {
		spec, err := reg.Resolve(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, spec.Key, alias)
	}
}

func TestRegistry_ResolveNormalization(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	// Test: uppercase alias with no leading dot behaves like the
	// canonical name.
	upper, err := reg.Resolve("RB")
	require.NoError(t, err)
	canonical, err := reg.Resolve("ruby")
	require.NoError(t, err)
	assert.Same(t, canonical, upper)

	// Test: dotted extensions and surrounding whitespace resolve too.
	dotted, err := reg.Resolve(".PY")
	require.NoError(t, err)
	assert.Equal(t, "python", dotted.Key)

	padded, err := reg.Resolve("  go  ")
	require.NoError(t, err)
	assert.Equal(t, "go", padded.Key)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	_, err := reg.Resolve("cobol")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "python")
}

func TestRegistry_DetectPath(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	spec, err := reg.DetectPath("src/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, "rust", spec.Key)

	spec, err = reg.DetectPath("include/util.hpp")
	require.NoError(t, err)
	assert.Equal(t, "cpp", spec.Key)

	_, err = reg.DetectPath("Makefile")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = reg.DetectPath("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestRegistry_LanguagesSorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	langs := reg.Languages()
	require.Len(t, langs, 20)
	assert.IsIncreasing(t, langs)

	specs := reg.Specs()
	require.Len(t, specs, 20)
	for i, s := range specs {
		assert.Equal(t, langs[i], s.Key)
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}
