package serve

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bgraf/cardtag/data"
	"github.com/bgraf/cardtag/tagging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunStopsWhenContextEnds(t *testing.T) {
	rules, err := tagging.NewRuleSet(tagging.DefaultKeywords(), tagging.MatchSubstring)
	require.NoError(t, err)
	ds, err := data.Read(strings.NewReader(serveCSV), data.DefaultColumns())
	require.NoError(t, err)

	api := NewAPI(tagging.NewTagger(rules), ds, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "127.0.0.1:0", api, zap.NewNop())
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
