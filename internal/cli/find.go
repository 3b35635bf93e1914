package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srcfold/srcfold/internal/batch"
)

var findNumbered bool

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <tags> <pattern> <files...>",
	Short: "Find and extract named constructs from source files",
	Long: `Find filters recognized constructs by pipe-separated kind tags and a
name regexp, printing each match with its complete code.

Examples:
  srcfold find 'CLASS|FUNCTION' 'Handler$' src/*.py
  srcfold find STRUCT '^Config' internal/config/config.go
  srcfold find tags
`,
	Args: cobra.MinimumNArgs(3),
	RunE: runFind,
}

// tagsCmd lists the searchable construct tags per language.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List searchable construct tags per language",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), batch.AvailableTags())
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.AddCommand(tagsCmd)
	findCmd.Flags().BoolVarP(&findNumbered, "line-numbers", "n", false, "Prefix extracted code lines with L<n>> markers")
	viper.BindPFlag("find-line-numbers", findCmd.Flags().Lookup("line-numbers"))
}

func runFind(cmd *cobra.Command, args []string) error {
	rep := batch.NewReporter(cmd.ErrOrStderr(), verbose)
	out, err := batch.FindConstructs(afero.NewOsFs(), args[2:], args[0], args[1],
		viper.GetBool("find-line-numbers"), rep)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
