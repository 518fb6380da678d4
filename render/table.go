package render

import (
	"strconv"

	"github.com/bgraf/cardtag/tagging"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type ColumnAlignment int

const (
	AlignLeft ColumnAlignment = iota
	AlignRight
)

// Table renders rows below headers in a rounded box. Missing cells render
// empty.
func Table(headers []string, rows [][]string, aligns []ColumnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// StatsTable lists per-tag counts of a tagging pass, followed by totals.
func StatsTable(stats tagging.Stats) string {
	var rows [][]string

	for _, tag := range stats.Tags() {
		rows = append(rows, []string{tag, strconv.Itoa(stats.TagCounts[tag])})
	}

	rows = append(rows,
		[]string{tagging.NoAbility, strconv.Itoa(stats.NoAbility)},
		[]string{"tagged rows", strconv.Itoa(stats.Tagged)},
		[]string{"skipped rows", strconv.Itoa(stats.Skipped)},
	)

	return Table([]string{"Tag", "Cards"}, rows, []ColumnAlignment{AlignLeft, AlignRight})
}

// RulesTable lists a keyword table.
func RulesTable(rules []tagging.Rule) string {
	rows := make([][]string, len(rules))
	for i, r := range rules {
		rows[i] = []string{r.Keyword, r.Tag}
	}

	return Table([]string{"Keyword", "Tag"}, rows, nil)
}
