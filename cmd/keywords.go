package cmd

import (
	"fmt"

	"github.com/bgraf/cardtag/config"
	"github.com/bgraf/cardtag/render"
	"github.com/bgraf/cardtag/tagging"
	"github.com/spf13/cobra"
)

// keywordsCmd represents the keywords command
var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the active keyword table",
	RunE:  runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().Bool("yaml", false, "print the table as a keywords file")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	asYAML, err := cmd.Flags().GetBool("yaml")
	if err != nil {
		return err
	}

	tagger, err := newTagger()
	if err != nil {
		return err
	}

	rules := tagger.Rules()
	if asYAML {
		return tagging.WriteKeywords(cmd.OutOrStdout(), rules.Keywords())
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.RulesTable(rules.Rules()))
	source := "built-in table"
	if config.HasKeywordsFile() {
		source = config.KeywordsFile()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d keywords from %s, %s matching\n", rules.Len(), source, rules.Mode())

	return nil
}
