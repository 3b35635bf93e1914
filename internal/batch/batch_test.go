package batch

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the batch layer:
// - GenerateMarkdown joins per-file analyses with --- separators
// - Missing files and unknown extensions downgrade to skips
// - All-skip batches return ErrNoValidInput
// - CompressFiles emits @@@ headers with the original line range
// - FindConstructs matches kind tags and name patterns, full code per hit
// - Tag filter parsing, invalid patterns, and the tag listing
// - Discovery walks roots with include/ignore globs, passes through
//   explicit file arguments, and prunes ignored directories
// - Reporter prints per-file lines and a summary only in verbose mode

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	return fsys
}

func TestGenerateMarkdown(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"a.py":      "def alpha():\n    return 1\n",
		"b.py":      "def beta():\n    return 2\n",
		"notes.txt": "plain text\n",
	})

	var buf bytes.Buffer
	rep := NewReporter(&buf, true)
	out, err := GenerateMarkdown(fsys, []string{"a.py", "b.py", "notes.txt", "missing.py"}, rep)
	require.NoError(t, err)

	assert.Contains(t, out, "# a.py | Python | 2L")
	assert.Contains(t, out, "# b.py | Python | 2L")
	assert.Contains(t, out, "\n\n---\n\n")

	diag := buf.String()
	assert.Contains(t, diag, "  OK    a.py")
	assert.Contains(t, diag, "  SKIP  notes.txt (unsupported extension)")
	assert.Contains(t, diag, "  SKIP  missing.py (file not found)")
	assert.Contains(t, diag, "  Processed: 2 ok, 2 skipped, 0 failed")

	ok, skipped, failed := rep.Counts()
	assert.Equal(t, 2, ok)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 0, failed)
}

func TestGenerateMarkdown_NoValidInput(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	rep := NewReporter(&bytes.Buffer{}, false)
	_, err := GenerateMarkdown(fsys, []string{"nope.py"}, rep)
	assert.ErrorIs(t, err, ErrNoValidInput)
}

func TestCompressFiles(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"a.py": "# leading comment\nx = 1\ny = 2\n",
	})

	rep := NewReporter(&bytes.Buffer{}, false)
	out, err := CompressFiles(fsys, []string{"a.py"}, true, "", rep)
	require.NoError(t, err)
	assert.Equal(t, "@@@ a.py | python\n> Lines: 2-3\n```\nL2> x = 1\nL3> y = 2\n```", out)
}

func TestCompressFiles_Unnumbered(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"a.py": "# leading comment\nx = 1\ny = 2\n",
	})

	rep := NewReporter(&bytes.Buffer{}, false)
	out, err := CompressFiles(fsys, []string{"a.py"}, false, "", rep)
	require.NoError(t, err)

	// The header range still reflects original line numbers.
	assert.Contains(t, out, "> Lines: 2-3")
	assert.Contains(t, out, "```\nx = 1\ny = 2\n```")
	assert.NotContains(t, out, "L2>")
}

func TestExtractLineRange(t *testing.T) {
	t.Parallel()

	start, end := extractLineRange("L2> a\nL9> b")
	assert.Equal(t, 2, start)
	assert.Equal(t, 9, end)

	start, end = extractLineRange("")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestFindConstructs(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"a.py": "class Greeter:\n    def hello(self):\n        return 'hi'\n",
	})

	var buf bytes.Buffer
	rep := NewReporter(&buf, true)
	out, err := FindConstructs(fsys, []string{"a.py"}, "CLASS|FUNCTION", "Greet.*", true, rep)
	require.NoError(t, err)

	assert.Contains(t, out, "@@@ a.py | python")
	assert.Contains(t, out, "### CLASS: `Greeter`")
	assert.Contains(t, out, "- Signature: `class Greeter`")
	assert.Contains(t, out, "- Lines: 1-3")
	assert.Contains(t, out, "L1> class Greeter:")
	// hello does not match the name pattern.
	assert.NotContains(t, out, "### FUNCTION:")
	assert.Contains(t, buf.String(), "  OK    a.py (1 matches)")
}

func TestFindConstructs_NoMatches(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"a.py": "x = 1\n",
	})

	rep := NewReporter(&bytes.Buffer{}, false)
	_, err := FindConstructs(fsys, []string{"a.py"}, "CLASS", "Nothing", false, rep)
	require.ErrorIs(t, err, ErrNoMatches)
	assert.Contains(t, err.Error(), "available tags by language")
}

func TestFindConstructs_BadArguments(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	rep := NewReporter(&bytes.Buffer{}, false)

	_, err := FindConstructs(fsys, nil, "", "x", false, rep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid tags")

	_, err = FindConstructs(fsys, nil, "CLASS", "(", false, rep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name pattern")
}

func TestParseTagFilter(t *testing.T) {
	t.Parallel()

	set := ParseTagFilter("class| Function |")
	assert.Equal(t, map[string]bool{"CLASS": true, "FUNCTION": true}, set)
}

func TestAvailableTags(t *testing.T) {
	t.Parallel()

	out := AvailableTags()
	assert.Contains(t, out, "- Go: CONSTANT, FUNCTION, IMPORT, INTERFACE, METHOD, MODULE, STRUCT, TYPE_ALIAS")
	assert.Contains(t, out, "- Python: CLASS, DECORATOR, FUNCTION, IMPORT, VARIABLE")
}

func TestDiscovery_ExtensionFallback(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"proj/src/a.py":          "x = 1\n",
		"proj/src/b.go":          "package b\n",
		"proj/src/readme.md":     "docs\n",
		"proj/node_modules/x.js": "var x\n",
		"proj/src/vendor/c.py":   "y = 2\n",
	})

	d, err := NewDiscovery(fsys, nil, []string{"node_modules/**", "src/vendor/**"})
	require.NoError(t, err)

	files, err := d.Resolve([]string{"proj"})
	require.NoError(t, err)
	assert.Equal(t, []string{"proj/src/a.py", "proj/src/b.go"}, files)
}

func TestDiscovery_IncludeGlobs(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"proj/src/a.py": "x = 1\n",
		"proj/src/b.go": "package b\n",
	})

	d, err := NewDiscovery(fsys, []string{"**/*.py"}, nil)
	require.NoError(t, err)

	files, err := d.Resolve([]string{"proj"})
	require.NoError(t, err)
	assert.Equal(t, []string{"proj/src/a.py"}, files)
}

func TestDiscovery_ExplicitFilesPassThrough(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"readme.md": "docs\n",
	})

	d, err := NewDiscovery(fsys, []string{"**/*.py"}, nil)
	require.NoError(t, err)

	// Explicit file roots bypass glob filtering; missing roots pass
	// through so the per-file surface reports them.
	files, err := d.Resolve([]string{"readme.md", "gone.py"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"readme.md", "gone.py"}, files)
}

func TestDiscovery_BadGlob(t *testing.T) {
	t.Parallel()

	_, err := NewDiscovery(afero.NewMemMapFs(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}

func TestGenerateMarkdown_Fixtures(t *testing.T) {
	t.Parallel()

	fsys := afero.NewOsFs()
	d, err := NewDiscovery(fsys, nil, nil)
	require.NoError(t, err)

	files, err := d.Resolve([]string{"testdata/code"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"testdata/code/go/simple.go",
		"testdata/code/python/simple.py",
	}, files)

	out, err := GenerateMarkdown(fsys, files, NewReporter(&bytes.Buffer{}, false))
	require.NoError(t, err)
	assert.Contains(t, out, "# simple.go | Go")
	assert.Contains(t, out, "# simple.py | Python")
	assert.Contains(t, out, "`class Greeter`")
}

func TestReporter_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewReporter(&buf, false)
	rep.Start(3)
	rep.OK("a.py")
	rep.Skip("b.txt", "unsupported extension")
	rep.Done()

	assert.Empty(t, buf.String())
	ok, skipped, failed := rep.Counts()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 0, failed)
}
