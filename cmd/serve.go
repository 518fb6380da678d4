package cmd

import (
	"github.com/bgraf/cardtag/cmd/serve"
	"github.com/bgraf/cardtag/config"
	"github.com/bgraf/cardtag/data"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [DATASET]",
	Short: "Serve classification and the tagged dataset over HTTP",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address")

	if err := viper.BindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
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

	api := serve.NewAPI(tagger, ds, config.ExcludedSeries(), logger)

	return serve.Run(cmd.Context(), config.ServeAddress(), api, logger)
}
