package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/cardtag/config"
	"github.com/bgraf/cardtag/data"
	"github.com/bgraf/cardtag/filesystem"
	"github.com/bgraf/cardtag/render"
	"github.com/bgraf/cardtag/tagging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag [DATASET...]",
	Short: "Tag every released card of one or more CSV datasets",
	Long: `Tag reads each dataset, derives the tags of every card whose series is not
excluded and writes the dataset back. Directories contribute their *.csv files.
Without arguments the configured dataset is used.`,
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringP("output", "o", "", "write the tagged dataset here instead of in place")
	tagCmd.Flags().BoolP("yes", "y", false, "overwrite in place without asking")
	tagCmd.Flags().Bool("dry-run", false, "tag in memory and print the summary only")
}

type tagOptions struct {
	Columns  data.Columns
	Excluded []string
	Output   string
	DryRun   bool
	// Confirm is asked before a dataset is replaced in place. Nil means yes.
	Confirm func(path string) (bool, error)
}

var errNotConfirmed = errors.New("overwrite not confirmed")

func runTag(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{config.DatasetPath()}
	}

	paths, err := filesystem.GatherFiles(args, []string{".csv"})
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no CSV datasets found in %v", args)
	}
	if output != "" && len(paths) > 1 {
		return fmt.Errorf("--output needs exactly one dataset, got %d", len(paths))
	}

	tagger, err := newTagger()
	if err != nil {
		return err
	}

	opts := tagOptions{
		Columns:  config.Columns(),
		Excluded: config.ExcludedSeries(),
		Output:   output,
		DryRun:   dryRun,
	}
	if !yes && isInteractive() {
		opts.Confirm = confirmOverwrite
	}

	for _, path := range paths {
		stats, err := tagDataset(tagger, path, opts)
		if errors.Is(err, errNotConfirmed) {
			logger.Info("dataset left unchanged", zap.String("path", path))
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		fmt.Fprintln(cmd.OutOrStdout(), render.StatsTable(stats))
	}

	return nil
}

// tagDataset runs one load, tag, write cycle. The dataset stays locked for
// the whole cycle.
func tagDataset(tagger *tagging.Tagger, path string, opts tagOptions) (tagging.Stats, error) {
	store, err := data.OpenStore(path, &data.StoreOptions{
		Columns: opts.Columns,
		Output:  opts.Output,
	})
	if err != nil {
		return tagging.Stats{}, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to release dataset lock", zap.String("path", path), zap.Error(err))
		}
	}()

	if store.Dataset.TagsAppended() {
		logger.Info("tags column added", zap.String("path", path), zap.String("column", opts.Columns.Tags))
	}

	stats := tagger.Apply(store.Dataset, opts.Excluded)

	logger.Info("dataset tagged",
		zap.String("path", path),
		zap.Int("rows", stats.Rows),
		zap.Int("tagged", stats.Tagged),
		zap.Int("skipped", stats.Skipped),
		zap.Int("no_ability", stats.NoAbility),
	)

	if opts.DryRun {
		return stats, nil
	}

	if store.InPlace() && opts.Confirm != nil {
		ok, err := opts.Confirm(store.OutputPath())
		if err != nil {
			return stats, err
		}
		if !ok {
			return stats, errNotConfirmed
		}
	}

	if err := store.Save(); err != nil {
		return stats, err
	}

	logger.Info("dataset written", zap.String("path", store.OutputPath()))

	return stats, nil
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func confirmOverwrite(path string) (bool, error) {
	ok := false

	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s", path),
		Default: ok,
	}

	err := survey.AskOne(prompt, &ok)
	if err == terminal.InterruptErr {
		return false, fmt.Errorf("interrupted")
	}

	return ok, err
}
