package config

import (
	"testing"

	"github.com/bgraf/cardtag/data"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults(viper.GetViper())

	assert.Equal(t, "MarvelSnapCardsList_Main.csv", DatasetPath())
	assert.Equal(t, data.DefaultColumns(), Columns())
	assert.Equal(t, []string{"Unreleased"}, ExcludedSeries())
	assert.False(t, HasKeywordsFile())
	assert.False(t, WholeWord())
	assert.Equal(t, ":8000", ServeAddress())
	assert.Equal(t, "cards.db", ExportDatabase())
	assert.Equal(t, "info", LogLevel())
	assert.False(t, LogDevelopment())
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults(viper.GetViper())

	viper.Set(KeyTagsColumn, "Labels")
	viper.Set(KeyKeywordsFile, "keywords.yaml")
	viper.Set(KeyExcludedSeries, []string{"Unreleased", "Test"})

	assert.Equal(t, "Labels", Columns().Tags)
	assert.True(t, HasKeywordsFile())
	assert.Equal(t, "keywords.yaml", KeywordsFile())
	assert.Equal(t, []string{"Unreleased", "Test"}, ExcludedSeries())
}
