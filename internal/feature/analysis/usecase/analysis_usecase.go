// Package usecase implements the trend classification heuristic.
//
// The classifier is a linear percentage-change heuristic over a price series:
// it compares the first and last elements and labels the series bullish,
// bearish or neutral. It is intentionally simple and carries no state,
// retries or cancellation logic.
package usecase

import (
	"fmt"
	"math"

	"xrp_alert_backend/internal/feature/analysis/domain/entity"
)

const (
	// DefaultTimeframe is used when the caller does not supply one.
	DefaultTimeframe = "1h"

	// SyntheticSeriesLen is the length of the series derived from a single
	// observation for /analyze.
	SyntheticSeriesLen = 100
)

// AnalyzeTrend classifies a price series.
//
// Fewer than 2 elements yields an unknown trend with zero confidence.
// Otherwise the percentage change between the first and last element decides:
// above +2% is bullish, below -2% is bearish, anything between is neutral
// with a fixed 0.7 confidence. Bullish/bearish confidence grows with the
// magnitude of the change and is capped at 0.95. Volatility is the plain
// max-min spread of the series.
func AnalyzeTrend(prices []float64, timeframe string) entity.TrendResult {
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	if len(prices) < 2 {
		return entity.TrendResult{Trend: entity.TrendUnknown, Confidence: 0.0}
	}

	first := prices[0]
	last := prices[len(prices)-1]
	changePct := (last - first) / first * 100

	lo, hi := prices[0], prices[0]
	for _, p := range prices[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	volatility := hi - lo

	var (
		trend      entity.Trend
		confidence float64
	)
	switch {
	case changePct > 2:
		trend = entity.TrendBullish
		confidence = math.Min(0.5+changePct/10, 0.95)
	case changePct < -2:
		trend = entity.TrendBearish
		confidence = math.Min(0.5+math.Abs(changePct)/10, 0.95)
	default:
		trend = entity.TrendNeutral
		confidence = 0.7
	}

	return entity.TrendResult{
		Trend:      trend,
		Confidence: confidence,
		ChangePct:  changePct,
		Volatility: volatility,
		Timeframe:  timeframe,
		Analysis:   summary(trend, changePct, volatility),
	}
}

// summary renders the human-readable line for a classified trend.
func summary(trend entity.Trend, changePct, volatility float64) string {
	switch trend {
	case entity.TrendBullish:
		return fmt.Sprintf("📈 XRP is showing bullish momentum with %.2f%% gain. Volatility: %.4f",
			math.Abs(changePct), volatility)
	case entity.TrendBearish:
		return fmt.Sprintf("📉 XRP is trending bearish with %.2f%% decline. Volatility: %.4f",
			math.Abs(changePct), volatility)
	case entity.TrendNeutral:
		return fmt.Sprintf("⚖️ XRP is consolidating with minimal movement (%.2f%%). Low volatility environment.",
			changePct)
	default:
		return "Market analysis pending"
	}
}

// SyntheticSeries derives a price series from a single observation for
// analysis: a linear ramp of SyntheticSeriesLen points centered on the given
// price, spanning ±5%.
func SyntheticSeries(price float64) []float64 {
	series := make([]float64, SyntheticSeriesLen)
	for i := range series {
		series[i] = price * (1 + float64(i-50)*0.001)
	}
	return series
}
