// Package sqlite exports tagged datasets into a SQLite database. Every export
// is a run; cards and their tags are keyed by run id and row index.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bgraf/cardtag/data"
	"github.com/bgraf/cardtag/tagging"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

//go:embed schema.sql
var schema string

type Store struct {
	sqlDB *sql.DB
}

// Run identifies one export.
type Run struct {
	ID        uuid.UUID
	Source    string
	CreatedAt time.Time
}

func NewRun(source string) Run {
	return Run{
		ID:        uuid.New(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// WriteRun stores every record of ds under run in a single transaction.
func (s *Store) WriteRun(ctx context.Context, run Run, ds *data.Dataset) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, created_at, row_count) VALUES (?, ?, ?, ?)`,
		run.ID.String(), run.Source, run.CreatedAt.Format(timeFormat), ds.Len(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	cardStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cards (run_id, row_index, series, ability, tags, record) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare card insert: %w", err)
	}
	defer cardStmt.Close()

	tagStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO card_tags (run_id, row_index, tag) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare tag insert: %w", err)
	}
	defer tagStmt.Close()

	for i := 0; i < ds.Len(); i++ {
		rec := ds.Record(i)

		record, err := json.Marshal(ds.Values(i))
		if err != nil {
			return fmt.Errorf("encode row %d: %w", i, err)
		}

		_, err = cardStmt.ExecContext(ctx,
			run.ID.String(), i, rec.Series, nullable(rec.Ability.GetOr("")), nullable(rec.Tags.GetOr("")), string(record))
		if err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}

		for _, tag := range data.ParseTags(rec.Tags.GetOr("")) {
			if tag.String() == tagging.NoAbility {
				continue
			}
			if _, err := tagStmt.ExecContext(ctx, run.ID.String(), i, tag.String()); err != nil {
				return fmt.Errorf("insert tag of row %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}

	return nil
}

// TagCounts returns how many cards of a run carry each tag.
func (s *Store) TagCounts(ctx context.Context, runID uuid.UUID) (map[string]int, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT tag, COUNT(*) FROM card_tags WHERE run_id = ? GROUP BY tag`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("query tag counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			tag   string
			count int
		)
		if err := rows.Scan(&tag, &count); err != nil {
			return nil, fmt.Errorf("scan tag count: %w", err)
		}
		counts[tag] = count
	}

	return counts, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
