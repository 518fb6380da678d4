package render

import (
	"sync"

	"github.com/bgraf/cardtag/data"
	"github.com/lucasb-eyer/go-colorful"
)

// TagSet hands out a display color per tag. A tag keeps its color for the
// lifetime of the set; lookups ignore case and surrounding space.
type TagSet struct {
	mu     sync.Mutex
	colors map[string]colorful.Color
}

func NewTagSet() *TagSet {
	return &TagSet{
		colors: make(map[string]colorful.Color),
	}
}

func (ts *TagSet) HexColor(tag string) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	normTag := data.NormalizeTagName(tag)
	c, ok := ts.colors[normTag]
	if !ok {
		c = colorful.HappyColor()
		ts.colors[normTag] = c
	}

	return c.Hex()
}
