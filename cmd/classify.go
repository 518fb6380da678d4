package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bgraf/cardtag/tagging"
	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [ABILITY...]",
	Short: "Print the tags of ability texts",
	Long: `Classify prints one tag line per argument. Without arguments every line
read from standard input is classified; an empty line yields "No Ability".`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	tagger, err := newTagger()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		for _, ability := range args {
			fmt.Fprintln(cmd.OutOrStdout(), tagger.ClassifyText(ability))
		}
		return nil
	}

	return classifyLines(cmd.InOrStdin(), cmd.OutOrStdout(), tagger)
}

func classifyLines(r io.Reader, w io.Writer, tagger *tagging.Tagger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, tagger.ClassifyText(scanner.Text())); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read abilities: %w", err)
	}

	return nil
}
