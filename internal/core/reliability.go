// Package core contains the reliability computation for cronalpha and the
// configuration layer that feeds it.
package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// minItems and minRespondents are the smallest table dimensions for which a
// correlation matrix, and therefore alpha, is meaningful.
const (
	minItems       = 2
	minRespondents = 2
)

// ComputeAlpha returns Cronbach's alpha for table, computed from the mean
// inter-item Pearson correlation:
//
//	alpha = (N * mean_r) / (1 + (N - 1) * mean_r)
//
// The result is the raw IEEE-754 quotient. A zero-variance item makes alpha
// NaN and a collapsing denominator makes it infinite; neither is an error.
func ComputeAlpha(table *models.ScoreTable) (float64, error) {
	corr, err := Correlate(table)
	if err != nil {
		return 0, err
	}
	return AlphaFromMeanCorrelation(corr.Size(), MeanInterItemCorrelation(corr)), nil
}

// Analyze computes alpha together with the intermediate values that produced it.
func Analyze(table *models.ScoreTable) (*models.AlphaResult, error) {
	corr, err := Correlate(table)
	if err != nil {
		return nil, err
	}

	n := corr.Size()
	meanR := MeanInterItemCorrelation(corr)
	return &models.AlphaResult{
		Alpha:                    AlphaFromMeanCorrelation(n, meanR),
		MeanInterItemCorrelation: meanR,
		Items:                    n,
		Respondents:              table.NumRespondents(),
		Pairs:                    n * (n - 1) / 2,
	}, nil
}

// Correlate returns the Pearson correlation matrix over the items of table.
// The diagonal is exactly 1. Correlations involving a constant item, or an
// item whose mean or variance overflows float64, are NaN.
func Correlate(table *models.ScoreTable) (*models.CorrelationMatrix, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	n := table.NumItems()
	x := mat.NewDense(table.NumRespondents(), n, table.Values())
	sym := mat.NewSymDense(n, nil)
	stat.CorrelationMatrix(sym, x, nil)

	undefined := make([]bool, n)
	for c := 0; c < n; c++ {
		col := table.Column(c)
		undefined[c] = isConstant(col) || !finiteMoments(col)
	}

	values := make([][]float64, n)
	for i := 0; i < n; i++ {
		values[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v := sym.At(i, j)
			switch {
			case i == j:
				v = 1
			case undefined[i] || undefined[j]:
				v = math.NaN()
			}
			values[i][j] = v
		}
	}
	return models.NewCorrelationMatrix(table.Items(), values)
}

// UpperTriangle returns the correlations strictly above the diagonal, row by
// row: (0,1), (0,2), ..., (1,2), ... giving N*(N-1)/2 values.
func UpperTriangle(corr *models.CorrelationMatrix) []float64 {
	n := corr.Size()
	rs := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rs = append(rs, corr.At(i, j))
		}
	}
	return rs
}

// MeanInterItemCorrelation is the arithmetic mean of UpperTriangle(corr).
// NaN entries propagate into the mean.
func MeanInterItemCorrelation(corr *models.CorrelationMatrix) float64 {
	rs := UpperTriangle(corr)
	if len(rs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, r := range rs {
		sum += r
	}
	return sum / float64(len(rs))
}

// AlphaFromMeanCorrelation applies the Spearman-Brown form of alpha for n
// items with mean inter-item correlation meanR. No clamping or rounding.
func AlphaFromMeanCorrelation(n int, meanR float64) float64 {
	nf := float64(n)
	return (nf * meanR) / (1 + (nf-1)*meanR)
}

func validateTable(table *models.ScoreTable) error {
	if table == nil {
		return models.NewInvalidInputError("score table is nil")
	}
	if table.NumItems() < minItems {
		return models.NewInvalidInputError("need at least %d items, got %d", minItems, table.NumItems())
	}
	if table.NumRespondents() < minRespondents {
		return models.NewInvalidInputError("need at least %d respondents, got %d", minRespondents, table.NumRespondents())
	}
	if r, c, ok := table.FirstNaN(); ok {
		return models.NewInvalidInputError("respondent %d, item %q: value is not a number", r+1, table.Items()[c])
	}
	return nil
}

// finiteMoments reports whether the mean and variance of col fit in a
// float64. Past that gonum's covariance sums overflow and the correlation
// it reports is meaningless.
func finiteMoments(col []float64) bool {
	mean, variance := stat.MeanVariance(col, nil)
	return !math.IsInf(mean, 0) && !math.IsNaN(mean) &&
		!math.IsInf(variance, 0) && !math.IsNaN(variance)
}

func isConstant(col []float64) bool {
	for _, v := range col[1:] {
		if v != col[0] {
			return false
		}
	}
	return true
}
