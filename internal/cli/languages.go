package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srcfold/srcfold/internal/lang"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and aliases",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		reg := lang.Default()

		aliasesFor := map[string][]string{}
		for alias, key := range reg.Aliases() {
			aliasesFor[key] = append(aliasesFor[key], alias)
		}

		fmt.Fprintln(out, "Supported languages:")
		for _, spec := range reg.Specs() {
			line := fmt.Sprintf("  %-14s (%s)", spec.Key, spec.Name)
			if aliases := aliasesFor[spec.Key]; len(aliases) > 0 {
				sort.Strings(aliases)
				line += "  aliases: " + strings.Join(aliases, ", ")
			}
			fmt.Fprintln(out, line)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
