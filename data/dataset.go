package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/bgraf/cardtag/option"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrMissingColumn   = errors.New("missing required column")
	ErrInvalidEncoding = errors.New("read csv: invalid UTF-8")
)

// Columns names the header cells the tagger reads and writes.
type Columns struct {
	Series  string
	Ability string
	Tags    string
}

func DefaultColumns() Columns {
	return Columns{
		Series:  "Series",
		Ability: "Card Ability",
		Tags:    "Tags",
	}
}

// Record is the tagging view of one row.
type Record struct {
	Index   int
	Series  string
	Ability option.Option[string]
	Tags    option.Option[string]
}

// Dataset is a CSV table held in memory. Cells are kept verbatim so that a
// round trip only changes the tags column.
type Dataset struct {
	columns Columns
	header  []string
	rows    [][]string

	seriesIdx  int
	abilityIdx int
	tagsIdx    int

	tagsAppended bool
}

// Read parses CSV from r. A leading UTF-8 byte order mark is dropped; any
// other invalid UTF-8 is an error. Rows shorter than the header are padded
// with empty cells; longer rows are an error. When the tags column is absent
// it is appended.
func Read(r io.Reader, columns Columns) (*Dataset, error) {
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: no header row")
	}

	// rows are numbered from 1, the header is row 0
	for i, record := range records {
		for _, cell := range record {
			if !utf8.ValidString(cell) {
				return nil, fmt.Errorf("%w: row %d", ErrInvalidEncoding, i)
			}
		}
	}

	ds := &Dataset{
		columns: columns,
		header:  append([]string(nil), records[0]...),
		rows:    records[1:],
	}

	if ds.seriesIdx, err = ds.requireColumn(columns.Series); err != nil {
		return nil, err
	}
	if ds.abilityIdx, err = ds.requireColumn(columns.Ability); err != nil {
		return nil, err
	}

	ds.tagsIdx = ds.columnIndex(columns.Tags)
	if ds.tagsIdx < 0 {
		ds.header = append(ds.header, columns.Tags)
		ds.tagsIdx = len(ds.header) - 1
		ds.tagsAppended = true
	}

	fields := len(records[0])
	for i, row := range ds.rows {
		if len(row) > fields {
			return nil, fmt.Errorf("read csv: row %d has %d fields, header has %d", i+1, len(row), fields)
		}

		for len(row) < len(ds.header) {
			row = append(row, "")
		}
		ds.rows[i] = row
	}

	return ds, nil
}

// Write serializes the dataset, header first.
func (ds *Dataset) Write(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ds.header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	if err := writer.WriteAll(ds.rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}

func (ds *Dataset) requireColumn(name string) (int, error) {
	idx := ds.columnIndex(name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return idx, nil
}

// columnIndex returns the first column called name, or -1.
func (ds *Dataset) columnIndex(name string) int {
	for i, h := range ds.header {
		if h == name {
			return i
		}
	}
	return -1
}

func (ds *Dataset) Columns() Columns {
	return ds.columns
}

func (ds *Dataset) Len() int {
	return len(ds.rows)
}

// TagsAppended reports whether the tags column was missing on load.
func (ds *Dataset) TagsAppended() bool {
	return ds.tagsAppended
}

func (ds *Dataset) Header() []string {
	return append([]string(nil), ds.header...)
}

// Values maps header names to the cells of row i. For duplicate header
// names the first column wins.
func (ds *Dataset) Values(i int) map[string]string {
	values := make(map[string]string, len(ds.header))
	for j := len(ds.header) - 1; j >= 0; j-- {
		values[ds.header[j]] = ds.rows[i][j]
	}
	return values
}

func (ds *Dataset) Record(i int) Record {
	row := ds.rows[i]
	return Record{
		Index:   i,
		Series:  row[ds.seriesIdx],
		Ability: option.NonZero(row[ds.abilityIdx]),
		Tags:    option.NonZero(row[ds.tagsIdx]),
	}
}

func (ds *Dataset) SetTags(i int, tags string) {
	ds.rows[i][ds.tagsIdx] = tags
}
