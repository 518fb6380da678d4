package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bgraf/cardtag/data"
	"github.com/bgraf/cardtag/tagging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const serveCSV = `Name,Series,Card Ability,Tags
Blade,Pool 2,"On Reveal: Discard a card, then draw a card.",
Hulk,Pool 1,,
Wolverine,Series 1,"When this card is discarded or destroyed, regain 2 Power and move it to a random location.",
Leaked,Unreleased,Destroy,
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rules, err := tagging.NewRuleSet(tagging.DefaultKeywords(), tagging.MatchSubstring)
	require.NoError(t, err)

	ds, err := data.Read(strings.NewReader(serveCSV), data.DefaultColumns())
	require.NoError(t, err)

	api := NewAPI(tagging.NewTagger(rules), ds, tagging.DefaultExcludedSeries, zap.NewNop())
	return NewRouter(api, zap.NewNop())
}

func do(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload), w.Body.String())

	return w, payload
}

func TestServeClassify(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		tags    string
		matches []interface{}
	}{
		{
			name:    "keywords",
			body:    `{"ability": "On Reveal: Discard a card, then draw a card."}`,
			tags:    "Discard, On Reveal",
			matches: []interface{}{"Discard", "On Reveal"},
		},
		{
			name:    "null ability",
			body:    `{"ability": null}`,
			tags:    tagging.NoAbility,
			matches: []interface{}{},
		},
		{
			name:    "missing ability",
			body:    `{}`,
			tags:    tagging.NoAbility,
			matches: []interface{}{},
		},
		{
			name:    "remove also hits move",
			body:    `{"ability": "Remove Text"}`,
			tags:    "Move, Remove Text",
			matches: []interface{}{"Move", "Remove Text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, payload := do(t, r, http.MethodPost, "/api/classify", tt.body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.tags, payload["tags"])
			assert.Equal(t, tt.matches, payload["matches"])
		})
	}
}

func TestServeClassifyRejectsBadBody(t *testing.T) {
	r := newTestRouter(t)

	w, payload := do(t, r, http.MethodPost, "/api/classify", `{"ability": 42}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, payload["error"])
}

func TestServeKeywords(t *testing.T) {
	r := newTestRouter(t)

	w, payload := do(t, r, http.MethodGet, "/api/keywords", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "substring", payload["mode"])
	assert.Len(t, payload["keywords"], 37)
}

func TestServeCards(t *testing.T) {
	r := newTestRouter(t)

	_, payload := do(t, r, http.MethodGet, "/api/cards", "")
	assert.Equal(t, float64(4), payload["count"])
	assert.Equal(t, []interface{}{"Name", "Series", "Card Ability", "Tags"}, payload["columns"])

	cards := payload["cards"].([]interface{})
	hulk := cards[1].(map[string]interface{})
	assert.Nil(t, hulk["ability"])
	assert.Equal(t, tagging.NoAbility, hulk["tags"])

	leaked := cards[3].(map[string]interface{})
	assert.Nil(t, leaked["tags"], "unreleased cards stay untagged")
	assert.Equal(t, "Leaked", leaked["values"].(map[string]interface{})["Name"])

	_, payload = do(t, r, http.MethodGet, "/api/cards?tag=discard", "")
	assert.Equal(t, float64(2), payload["count"])

	_, payload = do(t, r, http.MethodGet, "/api/cards?tag=discard&series=Pool%202", "")
	assert.Equal(t, float64(1), payload["count"])

	_, payload = do(t, r, http.MethodGet, "/api/cards?tag=Banish", "")
	assert.Equal(t, float64(0), payload["count"])
	assert.Equal(t, []interface{}{}, payload["cards"])
}

func TestServeTags(t *testing.T) {
	r := newTestRouter(t)

	_, payload := do(t, r, http.MethodGet, "/api/tags", "")
	assert.Equal(t, float64(3), payload["tagged"])
	assert.Equal(t, float64(1), payload["skipped"])
	assert.Equal(t, float64(1), payload["no_ability"])

	tags := payload["tags"].([]interface{})
	require.Len(t, tags, 4)

	discard := tags[1].(map[string]interface{})
	assert.Equal(t, "Discard", discard["tag"])
	assert.Equal(t, float64(2), discard["count"])
	assert.Regexp(t, `^#[0-9a-f]{6}$`, discard["color"])
}
