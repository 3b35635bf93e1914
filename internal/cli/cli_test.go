package cli

// Test Plan for CLI commands:
// - runAnalyze renders markdown by default and the structured listing with --quiet
// - runAnalyze rejects unknown extensions
// - runCompress prints a single file's compressed text directly
// - languages lists every registered language with its aliases

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestFile drops source content into a temp dir and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func captureCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestRunAnalyze_Markdown(t *testing.T) {
	path := writeTestFile(t, "sample.py", "class Greeter:\n    def hello(self):\n        return 'hi'\n")

	cmd, buf := captureCmd()
	require.NoError(t, runAnalyze(cmd, []string{path}))

	out := buf.String()
	assert.Contains(t, out, "# sample.py | Python | 3L")
	assert.Contains(t, out, "### class `class Greeter`")
	assert.Contains(t, out, "## Symbol Index")
}

func TestRunAnalyze_Quiet(t *testing.T) {
	path := writeTestFile(t, "sample.py", "def f():\n    return 1\n")

	analyzeQuiet = true
	defer func() { analyzeQuiet = false }()

	cmd, buf := captureCmd()
	require.NoError(t, runAnalyze(cmd, []string{path}))

	out := buf.String()
	assert.Contains(t, out, "## Definitions")
	assert.Contains(t, out, "## Complete Listing")
	assert.Contains(t, out, "- [FUNCTION] f [pub] L1-L2")
}

func TestRunAnalyze_UnknownExtension(t *testing.T) {
	path := writeTestFile(t, "notes.txt", "plain\n")

	cmd, _ := captureCmd()
	assert.Error(t, runAnalyze(cmd, []string{path}))
}

func TestRunCompress_SingleFile(t *testing.T) {
	path := writeTestFile(t, "sample.py", "# comment\nx = 1\n")

	cmd, buf := captureCmd()
	require.NoError(t, runCompress(cmd, []string{path}))

	assert.Equal(t, "L2> x = 1\n", buf.String())
}

func TestLanguagesCommand(t *testing.T) {
	cmd, buf := captureCmd()
	languagesCmd.Run(cmd, nil)

	out := buf.String()
	assert.Contains(t, out, "Supported languages:")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "aliases: py")
}
