package models

import "fmt"

// CorrelationMatrix is a square, symmetric matrix of Pearson correlations
// between the items of a ScoreTable. Entries involving a zero-variance item
// are NaN.
type CorrelationMatrix struct {
	items  []string
	values [][]float64
}

// NewCorrelationMatrix copies values into a CorrelationMatrix. values must be
// len(items) x len(items).
func NewCorrelationMatrix(items []string, values [][]float64) (*CorrelationMatrix, error) {
	if len(values) != len(items) {
		return nil, fmt.Errorf("correlation matrix has %d rows for %d items", len(values), len(items))
	}
	m := &CorrelationMatrix{
		items:  append([]string(nil), items...),
		values: make([][]float64, len(values)),
	}
	for i, row := range values {
		if len(row) != len(items) {
			return nil, fmt.Errorf("correlation matrix row %d has %d entries for %d items", i, len(row), len(items))
		}
		m.values[i] = append([]float64(nil), row...)
	}
	return m, nil
}

// Size returns N for an N x N matrix.
func (m *CorrelationMatrix) Size() int {
	return len(m.items)
}

// At returns the correlation between items i and j.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.values[i][j]
}

// Items returns a copy of the item names labelling rows and columns.
func (m *CorrelationMatrix) Items() []string {
	return append([]string(nil), m.items...)
}

// Rows returns a copy of the matrix as nested slices.
func (m *CorrelationMatrix) Rows() [][]float64 {
	out := make([][]float64, len(m.values))
	for i, row := range m.values {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
