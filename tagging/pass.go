package tagging

import (
	"sort"
	"strings"

	"github.com/bgraf/cardtag/data"
)

// DefaultExcludedSeries lists the series that are never tagged.
var DefaultExcludedSeries = []string{"Unreleased"}

// Stats summarizes one pass over a dataset.
type Stats struct {
	Rows      int
	Tagged    int
	Skipped   int
	NoAbility int
	TagCounts map[string]int
}

// Tags returns the tags seen during the pass, sorted.
func (s Stats) Tags() []string {
	tags := make([]string, 0, len(s.TagCounts))
	for tag := range s.TagCounts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Apply overwrites the tags cell of every record whose series is not in
// excluded. Records of an excluded series keep their tags cell as loaded.
func (t *Tagger) Apply(ds *data.Dataset, excluded []string) Stats {
	skip := make(map[string]struct{}, len(excluded))
	for _, s := range excluded {
		skip[s] = struct{}{}
	}

	stats := Stats{
		Rows:      ds.Len(),
		TagCounts: make(map[string]int),
	}

	for i := 0; i < ds.Len(); i++ {
		rec := ds.Record(i)

		if _, ok := skip[rec.Series]; ok {
			stats.Skipped++
			continue
		}

		matches := t.Match(rec.Ability)
		if len(matches) == 0 {
			ds.SetTags(i, NoAbility)
			stats.NoAbility++
		} else {
			for _, tag := range matches {
				stats.TagCounts[tag]++
			}
			ds.SetTags(i, strings.Join(matches, TagSeparator))
		}

		stats.Tagged++
	}

	return stats
}
