package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srcfold/srcfold/internal/batch"
	"github.com/srcfold/srcfold/internal/compress"
	"github.com/srcfold/srcfold/internal/lang"
)

var (
	compressLang     string
	compressNumbered bool
)

// compressCmd represents the compress command
var compressCmd = &cobra.Command{
	Use:   "compress <files...>",
	Short: "Compress source files by stripping comments and whitespace",
	Long: `Compress removes comments, blank lines, and redundant whitespace
while preserving language semantics such as Python indentation.

A single file prints its compressed text directly. Multiple files are
concatenated with an identifying "@@@ <path> | <language>" header per
file.

Examples:
  srcfold compress main.py
  srcfold compress --lang rust src/lib.rs
  srcfold compress --line-numbers=false a.go b.go
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)
	compressCmd.Flags().StringVarP(&compressLang, "lang", "l", "", "Language override (otherwise detected from extension)")
	compressCmd.Flags().BoolVarP(&compressNumbered, "line-numbers", "n", true, "Prefix retained lines with L<n>> markers")
	viper.BindPFlag("line-numbers", compressCmd.Flags().Lookup("line-numbers"))
}

func runCompress(cmd *cobra.Command, args []string) error {
	numbered := viper.GetBool("line-numbers")

	if len(args) == 1 {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		out, err := compressOne(string(data), path, numbered)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	rep := batch.NewReporter(cmd.ErrOrStderr(), verbose)
	out, err := batch.CompressFiles(afero.NewOsFs(), args, numbered, "", rep)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// compressOne compresses a single file's text, honoring the --lang
// override and falling back to extension detection.
func compressOne(source, path string, numbered bool) (string, error) {
	if compressLang != "" {
		return compress.Source(source, compressLang, numbered)
	}
	spec, err := lang.Default().DetectPath(path)
	if err != nil {
		return "", err
	}
	return compress.Source(source, spec.Key, numbered)
}
