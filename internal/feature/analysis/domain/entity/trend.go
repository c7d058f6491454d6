// Package entity defines the domain models for the analysis feature.
package entity

// Trend is a coarse classification of a price series.
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
	// TrendUnknown is returned when the series is too short to classify.
	TrendUnknown Trend = "unknown"
)

// TrendResult is the outcome of a trend analysis. It is computed fresh per
// request and never stored. For an unknown trend only Trend and Confidence
// are populated.
type TrendResult struct {
	Trend      Trend   `json:"trend"`
	Confidence float64 `json:"confidence"` // Heuristic score in [0,1], capped at 0.95
	ChangePct  float64 `json:"change_pct,omitempty"`
	Volatility float64 `json:"volatility,omitempty"`
	Timeframe  string  `json:"timeframe,omitempty"`
	Analysis   string  `json:"analysis,omitempty"`
}
