package models

import "strconv"

// AlphaResult is the outcome of one reliability analysis.
type AlphaResult struct {
	Alpha                    float64 `json:"alpha" yaml:"alpha"`
	MeanInterItemCorrelation float64 `json:"mean_inter_item_correlation" yaml:"mean_inter_item_correlation"`
	Items                    int     `json:"items" yaml:"items"`
	Respondents              int     `json:"respondents" yaml:"respondents"`
	Pairs                    int     `json:"pairs" yaml:"pairs"`
}

// FormatFloat renders v with the shortest representation that round-trips.
// NaN and infinities come out as "NaN", "+Inf" and "-Inf".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
