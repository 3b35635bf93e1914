package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srcfold/srcfold/internal/enrich"
	"github.com/srcfold/srcfold/internal/lang"
	"github.com/srcfold/srcfold/internal/render"
	"github.com/srcfold/srcfold/internal/scan"
)

var (
	analyzeQuiet    bool
	definitionsOnly bool
	commentsOnly    bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file> [language]",
	Short: "Analyze a source file and extract its structure",
	Long: `Analyze extracts definitions, comments, and code structure from a
source file using per-language heuristic patterns.

The language argument accepts canonical names and common aliases
(py, js, ts, rs, rb, cs, sh, ...) and is detected from the file
extension when omitted.

Examples:
  srcfold analyze main.py python
  srcfold analyze server.js
  srcfold analyze lib.rs rust --quiet
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "Show the structured listing instead of markdown")
	analyzeCmd.Flags().BoolVarP(&definitionsOnly, "definitions-only", "d", false, "Show only definitions (without comments)")
	analyzeCmd.Flags().BoolVarP(&commentsOnly, "comments-only", "c", false, "Show only comments")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	var spec *lang.Spec
	var err error
	if len(args) == 2 {
		spec, err = lang.Default().Resolve(args[1])
	} else {
		spec, err = lang.Default().DetectPath(path)
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")

	elements := scan.Scan(lines, spec)
	enrich.Enrich(elements, spec, lines)

	if definitionsOnly || commentsOnly {
		filtered := elements[:0]
		for _, e := range elements {
			if e.Kind.IsComment() == commentsOnly {
				filtered = append(filtered, e)
			}
		}
		elements = filtered
	}

	if analyzeQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), render.Structured(elements))
		return nil
	}

	total := len(lines)
	if total > 0 && lines[total-1] == "" {
		total--
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Markdown(elements, render.FileInfo{
		Path:       path,
		Language:   spec.Key,
		LangName:   spec.Name,
		TotalLines: total,
	}))
	return nil
}
