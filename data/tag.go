package data

import "strings"

type Tag struct {
	Raw string
}

func (t Tag) String() string {
	return t.Raw
}

func (t Tag) Normalize() string {
	return NormalizeTagName(t.Raw)
}

func NormalizeTagName(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return tag
}

// ParseTags splits a tags cell such as "Discard, On Reveal". Blank entries
// are dropped.
func ParseTags(cell string) []Tag {
	var tags []Tag

	for _, raw := range strings.Split(cell, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tags = append(tags, Tag{Raw: raw})
	}

	return tags
}

// HasTag reports whether cell lists name, ignoring case and surrounding space.
func HasTag(cell string, name string) bool {
	name = NormalizeTagName(name)
	for _, t := range ParseTags(cell) {
		if t.Normalize() == name {
			return true
		}
	}
	return false
}
