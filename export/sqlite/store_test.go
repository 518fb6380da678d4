package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgraf/cardtag/data"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportCSV = `Name,Series,Card Ability,Tags
Blade,Pool 2,"On Reveal: Discard a card.","Discard, On Reveal"
Hulk,Pool 1,,No Ability
Leaked,Unreleased,Destroy,
`

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

// cardTags returns the stored tags cell of every card of a run, nulls as "".
func cardTags(t *testing.T, store *Store, runID uuid.UUID) []string {
	t.Helper()

	rows, err := store.sqlDB.Query(`SELECT tags FROM cards WHERE run_id = ? ORDER BY row_index`, runID.String())
	require.NoError(t, err)
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var cell sql.NullString
		require.NoError(t, rows.Scan(&cell))
		tags = append(tags, cell.String)
	}
	require.NoError(t, rows.Err())

	return tags
}

func TestWriteRun(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	ds, err := data.Read(strings.NewReader(exportCSV), data.DefaultColumns())
	require.NoError(t, err)

	run := NewRun("cards.csv")
	require.NoError(t, store.WriteRun(ctx, run, ds))

	counts, err := store.TagCounts(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Discard": 1, "On Reveal": 1}, counts)

	tags := cardTags(t, store, run.ID)
	assert.Equal(t, []string{"Discard, On Reveal", "No Ability", ""}, tags)

	var (
		ability sql.NullString
		record  string
	)
	err = store.sqlDB.QueryRowContext(ctx,
		`SELECT ability, record FROM cards WHERE run_id = ? AND row_index = 1`, run.ID.String(),
	).Scan(&ability, &record)
	require.NoError(t, err)
	assert.False(t, ability.Valid)
	assert.JSONEq(t, `{"Name":"Hulk","Series":"Pool 1","Card Ability":"","Tags":"No Ability"}`, record)
}

func TestWriteRunKeepsRunsApart(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	ds, err := data.Read(strings.NewReader(exportCSV), data.DefaultColumns())
	require.NoError(t, err)

	first := NewRun("cards.csv")
	second := NewRun("cards.csv")
	require.NoError(t, store.WriteRun(ctx, first, ds))
	require.NoError(t, store.WriteRun(ctx, second, ds))

	assert.Error(t, store.WriteRun(ctx, first, ds), "run ids are unique")

	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	tags := cardTags(t, reopened, second.ID)
	assert.Len(t, tags, 3)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.ErrorContains(t, err, "required")
}

func TestCloseNil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
