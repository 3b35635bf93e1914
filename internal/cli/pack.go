package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srcfold/srcfold/internal/batch"
)

var (
	packOut     string
	packInclude []string
	packIgnore  []string
	packQuiet   bool
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack [paths...]",
	Short: "Generate concatenated markdown analyses for many files",
	Long: `Pack analyzes every resolved source file and concatenates the
per-file markdown with "---" separators, suitable as a single LLM
context document.

Directory arguments are walked recursively; include and ignore glob
patterns filter the walk. Per-file OK/SKIP/FAIL status goes to stderr.
The command fails when zero files are processed successfully.

Examples:
  srcfold pack src/
  srcfold pack --include '**/*.go' --ignore 'vendor/**' .
  srcfold pack src/ --out analysis.md
`,
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringVarP(&packOut, "out", "o", "", "Write output to file instead of stdout")
	packCmd.Flags().StringSliceVar(&packInclude, "include", nil, "Glob patterns selecting files inside directory arguments")
	packCmd.Flags().StringSliceVar(&packIgnore, "ignore", nil, "Glob patterns excluded from directory walks")
	packCmd.Flags().BoolVarP(&packQuiet, "quiet", "q", false, "Suppress per-file diagnostics")
	viper.BindPFlag("ignore", packCmd.Flags().Lookup("ignore"))
	viper.BindPFlag("quiet", packCmd.Flags().Lookup("quiet"))
}

func runPack(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	fsys := afero.NewOsFs()
	disc, err := batch.NewDiscovery(fsys, packInclude, viper.GetStringSlice("ignore"))
	if err != nil {
		return fmt.Errorf("compiling glob patterns: %w", err)
	}
	files, err := disc.Resolve(args)
	if err != nil {
		return err
	}

	rep := batch.NewReporter(cmd.ErrOrStderr(), !viper.GetBool("quiet"))
	out, err := batch.GenerateMarkdown(fsys, files, rep)
	if err != nil {
		if errors.Is(err, batch.ErrNoValidInput) {
			return fmt.Errorf("%w (checked %d files)", err, len(files))
		}
		return err
	}

	if packOut != "" {
		return os.WriteFile(packOut, []byte(out+"\n"), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
