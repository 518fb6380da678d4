package tagging

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MatchMode selects how a keyword is located in ability text.
type MatchMode int

const (
	// MatchSubstring matches the keyword anywhere, so "move" also hits "remove".
	MatchSubstring MatchMode = iota
	// MatchWholeWord anchors the keyword on word boundaries.
	MatchWholeWord
)

func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchWholeWord:
		return "whole-word"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// Rule maps a lowercase keyword phrase to a tag label.
type Rule struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Tag     string `json:"tag" yaml:"tag"`
}

type compiledRule struct {
	Rule
	pattern *regexp.Regexp
}

// RuleSet is an immutable, compiled keyword table. It is safe to share
// between goroutines.
type RuleSet struct {
	mode  MatchMode
	rules []compiledRule
}

// NewRuleSet compiles keywords (phrase -> tag). Phrases are trimmed and
// lowercased; empty phrases or tags are rejected.
func NewRuleSet(keywords map[string]string, mode MatchMode) (*RuleSet, error) {
	rs := &RuleSet{
		mode:  mode,
		rules: make([]compiledRule, 0, len(keywords)),
	}

	for keyword, tag := range keywords {
		keyword = lower(strings.TrimSpace(keyword))
		tag = strings.TrimSpace(tag)

		if keyword == "" {
			return nil, fmt.Errorf("empty keyword for tag %q", tag)
		}
		if tag == "" {
			return nil, fmt.Errorf("empty tag for keyword %q", keyword)
		}

		expr := regexp.QuoteMeta(keyword)
		if mode == MatchWholeWord {
			expr = wordBounded(keyword, expr)
		}

		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile keyword %q: %w", keyword, err)
		}

		rs.rules = append(rs.rules, compiledRule{
			Rule:    Rule{Keyword: keyword, Tag: tag},
			pattern: pattern,
		})
	}

	sort.Slice(rs.rules, func(i, j int) bool {
		if rs.rules[i].Keyword != rs.rules[j].Keyword {
			return rs.rules[i].Keyword < rs.rules[j].Keyword
		}
		return rs.rules[i].Tag < rs.rules[j].Tag
	})

	return rs, nil
}

func (rs *RuleSet) Mode() MatchMode {
	return rs.mode
}

func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns a copy of the table ordered by keyword.
func (rs *RuleSet) Rules() []Rule {
	rules := make([]Rule, len(rs.rules))
	for i, r := range rs.rules {
		rules[i] = r.Rule
	}
	return rules
}

// Keywords returns the table as a fresh phrase -> tag map.
func (rs *RuleSet) Keywords() map[string]string {
	keywords := make(map[string]string, len(rs.rules))
	for _, r := range rs.rules {
		keywords[r.Keyword] = r.Tag
	}
	return keywords
}

// DefaultKeywords returns a copy of the built-in card keyword table.
func DefaultKeywords() map[string]string {
	keywords := make(map[string]string, len(defaultKeywords))
	for k, v := range defaultKeywords {
		keywords[k] = v
	}
	return keywords
}

var defaultKeywords = map[string]string{
	"on reveal":                    "On Reveal",
	"ongoing":                      "Ongoing",
	"discard":                      "Discard",
	"destroy":                      "Destroy",
	"banish":                       "Banish",
	"add card to hand":             "Add Card to Hand",
	"increase power":               "Increase Power",
	"afflict":                      "Afflict",
	"card draw":                    "Card Draw",
	"duplicate":                    "Duplicate Card",
	"decrease cost":                "Decrease Cost",
	"activate":                     "Activate",
	"add card to location":         "Add Card to Location",
	"game start":                   "Game Start",
	"return to hand":               "Return to Hand",
	"end of turn":                  "End of Turn",
	"increase cost":                "Increase Cost",
	"move":                         "Move",
	"add card at location":         "Add Card At Location",
	"set cost":                     "Set Cost",
	"skill":                        "Skill",
	"transform":                    "Transform",
	"add card to deck":             "Add Card to Deck",
	"add card":                     "Add Card",
	"change location":              "Change Location",
	"copy text":                    "Copy Text",
	"game end":                     "Game End",
	"merge":                        "Merge",
	"double power":                 "Double Power",
	"max energy":                   "Max Energy",
	"remove text":                  "Remove Text",
	"play at location restriction": "Play at Location Restriction",
	"set power":                    "Set Power",
	"start in hand":                "Start in Hand",
	"steal power":                  "Steal Power",
	"switch sides":                 "Switch Sides",
	"trigger":                      "Trigger",
}

// wordBounded anchors expr with \b on each side where keyword starts or ends
// with a word character. A \b next to punctuation such as "(" would demand a
// word character outside the keyword and never match.
func wordBounded(keyword, expr string) string {
	if isWordByte(keyword[0]) {
		expr = `\b` + expr
	}
	if isWordByte(keyword[len(keyword)-1]) {
		expr = expr + `\b`
	}
	return expr
}

// isWordByte matches the ASCII class regexp uses for \b.
func isWordByte(b byte) bool {
	return b == '_' ||
		'0' <= b && b <= '9' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z'
}
