package cmd

import (
	"github.com/bgraf/cardtag/config"
	"github.com/bgraf/cardtag/tagging"
	"go.uber.org/zap"
)

// newTagger builds the tagger from the configured keyword table and match
// mode.
func newTagger() (*tagging.Tagger, error) {
	return buildTagger(config.KeywordsFile(), config.WholeWord())
}

func buildTagger(keywordsFile string, wholeWord bool) (*tagging.Tagger, error) {
	keywords := tagging.DefaultKeywords()
	if keywordsFile != "" {
		var err error
		keywords, err = tagging.LoadKeywordsFile(keywordsFile)
		if err != nil {
			return nil, err
		}
	}

	mode := tagging.MatchSubstring
	if wholeWord {
		mode = tagging.MatchWholeWord
	}

	rules, err := tagging.NewRuleSet(keywords, mode)
	if err != nil {
		return nil, err
	}

	logger.Debug("keyword table ready",
		zap.Int("keywords", rules.Len()),
		zap.Stringer("mode", rules.Mode()),
		zap.String("file", keywordsFile),
	)

	return tagging.NewTagger(rules), nil
}
