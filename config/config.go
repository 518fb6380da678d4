package config

import (
	"github.com/bgraf/cardtag/data"
	"github.com/spf13/viper"
)

var (
	KeyDatasetPath    = "dataset.path"
	KeySeriesColumn   = "dataset.columns.series"
	KeyAbilityColumn  = "dataset.columns.ability"
	KeyTagsColumn     = "dataset.columns.tags"
	KeyExcludedSeries = "tagging.excluded_series"
	KeyKeywordsFile   = "tagging.keywords_file"
	KeyWholeWord      = "tagging.whole_word"
	KeyServeAddress   = "serve.address"
	KeyExportDatabase = "export.database"
	KeyLogLevel       = "log.level"
	KeyLogDevelopment = "log.development"
)

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	columns := data.DefaultColumns()

	v.SetDefault(KeyDatasetPath, "MarvelSnapCardsList_Main.csv")
	v.SetDefault(KeySeriesColumn, columns.Series)
	v.SetDefault(KeyAbilityColumn, columns.Ability)
	v.SetDefault(KeyTagsColumn, columns.Tags)
	v.SetDefault(KeyExcludedSeries, []string{"Unreleased"})
	v.SetDefault(KeyKeywordsFile, "")
	v.SetDefault(KeyWholeWord, false)
	v.SetDefault(KeyServeAddress, ":8000")
	v.SetDefault(KeyExportDatabase, "cards.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
}

func DatasetPath() string {
	return viper.GetString(KeyDatasetPath)
}

func Columns() data.Columns {
	return data.Columns{
		Series:  viper.GetString(KeySeriesColumn),
		Ability: viper.GetString(KeyAbilityColumn),
		Tags:    viper.GetString(KeyTagsColumn),
	}
}

func ExcludedSeries() []string {
	return viper.GetStringSlice(KeyExcludedSeries)
}

func HasKeywordsFile() bool {
	return viper.GetString(KeyKeywordsFile) != ""
}

func KeywordsFile() string {
	return viper.GetString(KeyKeywordsFile)
}

func WholeWord() bool {
	return viper.GetBool(KeyWholeWord)
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

func ExportDatabase() string {
	return viper.GetString(KeyExportDatabase)
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func LogDevelopment() bool {
	return viper.GetBool(KeyLogDevelopment)
}
