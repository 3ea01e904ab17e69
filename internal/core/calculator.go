package core

import (
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// EventLogger receives analysis events. app.go adapts the observability
// event log to it.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// Calculator runs reliability analyses and records their outcome.
type Calculator interface {
	Analyze(table *models.ScoreTable) (*models.AlphaResult, error)
	Correlate(table *models.ScoreTable) (*models.CorrelationMatrix, error)
}

type reliabilityCalculator struct {
	events EventLogger
}

// NewCalculator returns a Calculator. events may be nil.
func NewCalculator(events EventLogger) Calculator {
	return &reliabilityCalculator{events: events}
}

func (c *reliabilityCalculator) Analyze(table *models.ScoreTable) (*models.AlphaResult, error) {
	res, err := Analyze(table)
	if err != nil {
		c.logEvent("alpha.failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	c.logEvent("alpha.computed", map[string]any{
		"alpha":       models.FormatFloat(res.Alpha),
		"mean_r":      models.FormatFloat(res.MeanInterItemCorrelation),
		"items":       res.Items,
		"respondents": res.Respondents,
	})
	return res, nil
}

func (c *reliabilityCalculator) Correlate(table *models.ScoreTable) (*models.CorrelationMatrix, error) {
	return Correlate(table)
}

// logEvent is a nil-safe helper; event log failures never fail an analysis.
func (c *reliabilityCalculator) logEvent(eventType string, data map[string]any) {
	if c.events != nil {
		_ = c.events.LogEvent(eventType, data)
	}
}
