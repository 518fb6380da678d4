package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bgraf/cardtag/config"
	"github.com/bgraf/cardtag/data"
	"github.com/bgraf/cardtag/export/sqlite"
	"github.com/bgraf/cardtag/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [DATASET]",
	Short: "Tag a dataset in memory and store it in a SQLite database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("db", "", "SQLite database file")

	if err := viper.BindPFlag(config.KeyExportDatabase, exportCmd.Flags().Lookup("db")); err != nil {
		panic(err)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	path := config.DatasetPath()
	if len(args) == 1 {
		path = args[0]
	}

	tagger, err := newTagger()
	if err != nil {
		return err
	}

	ds, err := data.LoadFile(path, config.Columns())
	if err != nil {
		return err
	}

	stats := tagger.Apply(ds, config.ExcludedSeries())

	store, err := sqlite.Open(config.ExportDatabase())
	if err != nil {
		return err
	}
	defer store.Close()

	run := sqlite.NewRun(path)
	if err := store.WriteRun(cmd.Context(), run, ds); err != nil {
		return err
	}

	logger.Info("dataset exported",
		zap.String("path", path),
		zap.String("database", config.ExportDatabase()),
		zap.String("run", run.ID.String()),
		zap.Int("rows", stats.Rows),
	)

	counts, err := store.TagCounts(cmd.Context(), run.ID)
	if err != nil {
		return err
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	rows := make([][]string, len(tags))
	for i, tag := range tags {
		rows[i] = []string{tag, strconv.Itoa(counts[tag])}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", run.ID)
	fmt.Fprintln(cmd.OutOrStdout(), render.Table([]string{"Tag", "Cards"}, rows, []render.ColumnAlignment{render.AlignLeft, render.AlignRight}))

	return nil
}
