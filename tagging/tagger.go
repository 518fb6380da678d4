// Package tagging derives category tags from card ability text.
//
// A Tagger holds an immutable RuleSet and maps ability text to either a sorted,
// ", "-joined list of tag labels or the NoAbility sentinel.
package tagging

import (
	"sort"
	"strings"

	"github.com/bgraf/cardtag/option"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoAbility is returned for missing or blank ability text and for text that
// matches no keyword.
const NoAbility = "No Ability"

// TagSeparator joins multiple tags in a single cell.
const TagSeparator = ", "

type Tagger struct {
	rules *RuleSet
}

func NewTagger(rules *RuleSet) *Tagger {
	return &Tagger{rules: rules}
}

func (t *Tagger) Rules() *RuleSet {
	return t.rules
}

// Classify returns the tag cell value for an ability. It never fails.
func (t *Tagger) Classify(ability option.Option[string]) string {
	matches := t.Match(ability)
	if len(matches) == 0 {
		return NoAbility
	}

	return strings.Join(matches, TagSeparator)
}

// ClassifyText treats an empty string as a missing ability.
func (t *Tagger) ClassifyText(ability string) string {
	return t.Classify(option.NonZero(ability))
}

// Match returns the distinct tags whose keyword occurs in ability, sorted.
// Missing, blank and "no ability" texts yield nil.
func (t *Tagger) Match(ability option.Option[string]) []string {
	if ability.IsNone() {
		return nil
	}

	text := lower(strings.TrimSpace(ability.Get()))
	if text == "" || text == "no ability" {
		return nil
	}

	seen := make(map[string]struct{})
	var tags []string

	for _, r := range t.rules.rules {
		if !r.pattern.MatchString(text) {
			continue
		}

		if _, ok := seen[r.Tag]; ok {
			continue
		}
		seen[r.Tag] = struct{}{}
		tags = append(tags, r.Tag)
	}

	sort.Strings(tags)

	return tags
}

// lower folds with Unicode casing rules. A Caser is stateful, so each call
// gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
