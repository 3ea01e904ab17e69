// Package models defines the data types shared across cronalpha: score
// tables, correlation matrices, analysis results and configuration.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ScoreTable is an immutable rectangular table of item scores.
// Rows are respondents and columns are items.
type ScoreTable struct {
	items []string
	rows  [][]float64
}

// NewScoreTable builds a ScoreTable from row-major values. The input slices
// are copied. When items is nil, names item_1..item_N are generated from the
// width of the first row. Rows whose width differs from the item count are
// rejected with an InvalidInputError. Errors number respondents from 1 in
// data order, so a header line or skipped blank rows are not counted.
func NewScoreTable(items []string, rows [][]float64) (*ScoreTable, error) {
	if items == nil {
		width := 0
		if len(rows) > 0 {
			width = len(rows[0])
		}
		items = GenerateItemNames(width)
	}

	t := &ScoreTable{
		items: append([]string(nil), items...),
		rows:  make([][]float64, len(rows)),
	}
	for r, row := range rows {
		if len(row) != len(items) {
			return nil, NewInvalidInputError("respondent %d has %d values, expected %d", r+1, len(row), len(items))
		}
		t.rows[r] = append([]float64(nil), row...)
	}
	return t, nil
}

// ParseScoreTable builds a ScoreTable from textual cells, as read from a CSV
// file or a spreadsheet. Every cell must parse as a float; blank cells count
// as non-numeric.
func ParseScoreTable(items []string, cells [][]string) (*ScoreTable, error) {
	if items == nil {
		width := 0
		if len(cells) > 0 {
			width = len(cells[0])
		}
		items = GenerateItemNames(width)
	}

	rows := make([][]float64, len(cells))
	for r, rec := range cells {
		if len(rec) != len(items) {
			return nil, NewInvalidInputError("respondent %d has %d values, expected %d", r+1, len(rec), len(items))
		}
		row := make([]float64, len(rec))
		for c, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, NewInvalidInputError("respondent %d, item %q: non-numeric value %q", r+1, items[c], cell)
			}
			row[c] = v
		}
		rows[r] = row
	}
	return NewScoreTable(items, rows)
}

// GenerateItemNames returns item_1..item_n.
func GenerateItemNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("item_%d", i+1)
	}
	return names
}

// Items returns a copy of the item names in column order.
func (t *ScoreTable) Items() []string {
	return append([]string(nil), t.items...)
}

// NumItems returns the number of columns.
func (t *ScoreTable) NumItems() int {
	return len(t.items)
}

// NumRespondents returns the number of rows.
func (t *ScoreTable) NumRespondents() int {
	return len(t.rows)
}

// At returns the score of respondent r on item c.
func (t *ScoreTable) At(r, c int) float64 {
	return t.rows[r][c]
}

// Column returns a copy of the scores for item c.
func (t *ScoreTable) Column(c int) []float64 {
	col := make([]float64, len(t.rows))
	for r, row := range t.rows {
		col[r] = row[c]
	}
	return col
}

// Values returns the scores flattened in row-major order.
func (t *ScoreTable) Values() []float64 {
	out := make([]float64, 0, len(t.rows)*len(t.items))
	for _, row := range t.rows {
		out = append(out, row...)
	}
	return out
}

// FirstNaN returns the position of the first NaN cell, if any.
func (t *ScoreTable) FirstNaN() (row, col int, ok bool) {
	for r, vals := range t.rows {
		for c, v := range vals {
			if math.IsNaN(v) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Select returns a table restricted to the named items, in the given order.
func (t *ScoreTable) Select(names []string) (*ScoreTable, error) {
	index := make(map[string]int, len(t.items))
	for i := len(t.items) - 1; i >= 0; i-- {
		index[t.items[i]] = i
	}

	order := make([]int, len(names))
	for i, name := range names {
		c, ok := index[name]
		if !ok {
			return nil, NewInvalidInputError("unknown item %q", name)
		}
		order[i] = c
	}
	return t.project(order), nil
}

// Permute returns a table whose column k is column order[k] of t. order must
// be a permutation of 0..NumItems()-1.
func (t *ScoreTable) Permute(order []int) (*ScoreTable, error) {
	if len(order) != len(t.items) {
		return nil, fmt.Errorf("permutation has %d entries, table has %d items", len(order), len(t.items))
	}
	seen := make([]bool, len(order))
	for _, c := range order {
		if c < 0 || c >= len(order) || seen[c] {
			return nil, fmt.Errorf("invalid permutation %v", order)
		}
		seen[c] = true
	}
	return t.project(order), nil
}

func (t *ScoreTable) project(order []int) *ScoreTable {
	out := &ScoreTable{
		items: make([]string, len(order)),
		rows:  make([][]float64, len(t.rows)),
	}
	for k, c := range order {
		out.items[k] = t.items[c]
	}
	for r, row := range t.rows {
		nr := make([]float64, len(order))
		for k, c := range order {
			nr[k] = row[c]
		}
		out.rows[r] = nr
	}
	return out
}
