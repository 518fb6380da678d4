package serve

import (
	"net/http"

	"github.com/bgraf/cardtag/data"
	"github.com/bgraf/cardtag/option"
	"github.com/bgraf/cardtag/render"
	"github.com/bgraf/cardtag/tagging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// API answers classification requests and exposes a dataset tagged once at
// startup. The dataset is never written back.
type API struct {
	tagger  *tagging.Tagger
	dataset *data.Dataset
	stats   tagging.Stats
	tagSet  *render.TagSet
	logger  *zap.Logger
}

func NewAPI(tagger *tagging.Tagger, ds *data.Dataset, excluded []string, logger *zap.Logger) *API {
	api := &API{
		tagger:  tagger,
		dataset: ds,
		stats:   tagger.Apply(ds, excluded),
		tagSet:  render.NewTagSet(),
		logger:  logger,
	}

	for _, tag := range api.stats.Tags() {
		api.tagSet.HexColor(tag)
	}

	return api
}

type classifyRequest struct {
	Ability option.Option[string] `json:"ability"`
}

type classifyResponse struct {
	Ability option.Option[string] `json:"ability"`
	Tags    string                `json:"tags"`
	Matches []string              `json:"matches"`
}

func (api *API) ServeClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches := api.tagger.Match(req.Ability)
	if matches == nil {
		matches = []string{}
	}

	c.JSON(http.StatusOK, classifyResponse{
		Ability: req.Ability,
		Tags:    api.tagger.Classify(req.Ability),
		Matches: matches,
	})
}

func (api *API) ServeKeywords(c *gin.Context) {
	rules := api.tagger.Rules()

	c.JSON(http.StatusOK, gin.H{
		"mode":     rules.Mode().String(),
		"keywords": rules.Rules(),
	})
}

type card struct {
	Index   int                   `json:"index"`
	Series  string                `json:"series"`
	Ability option.Option[string] `json:"ability"`
	Tags    option.Option[string] `json:"tags"`
	Values  map[string]string     `json:"values"`
}

// ServeCards lists the tagged dataset. Query parameters "tag" and "series"
// narrow the result; tag matching ignores case.
func (api *API) ServeCards(c *gin.Context) {
	tag := c.Query("tag")
	series, filterSeries := c.GetQuery("series")

	cards := []card{}
	for i := 0; i < api.dataset.Len(); i++ {
		rec := api.dataset.Record(i)

		if filterSeries && rec.Series != series {
			continue
		}
		if tag != "" && !data.HasTag(rec.Tags.GetOr(""), tag) {
			continue
		}

		cards = append(cards, card{
			Index:   rec.Index,
			Series:  rec.Series,
			Ability: rec.Ability,
			Tags:    rec.Tags,
			Values:  api.dataset.Values(i),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": api.dataset.Header(),
		"count":   len(cards),
		"cards":   cards,
	})
}

type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

func (api *API) ServeTags(c *gin.Context) {
	tags := []tagCount{}
	for _, tag := range api.stats.Tags() {
		tags = append(tags, tagCount{
			Tag:   tag,
			Count: api.stats.TagCounts[tag],
			Color: api.tagSet.HexColor(tag),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":       tags,
		"tagged":     api.stats.Tagged,
		"skipped":    api.stats.Skipped,
		"no_ability": api.stats.NoAbility,
	})
}
