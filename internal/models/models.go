// Package models provides domain models for the stock analysis dashboard.
package models

import (
	"fmt"
	"time"
)

// Period represents a historical price range accepted by the dashboard.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
)

// DefaultPeriod is the period preselected by the dashboard.
const DefaultPeriod = Period1Y

// Periods returns all valid periods in display order.
func Periods() []Period {
	return []Period{Period1Mo, Period3Mo, Period6Mo, Period1Y, Period2Y}
}

// ParsePeriod validates a period string.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid period %q (valid: 1mo, 3mo, 6mo, 1y, 2y)", s)
}

// Candle represents OHLCV data for a time period.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// MarketSnapshot holds the fundamentals and price history fetched for one
// (symbol, period) pair. Snapshots are immutable after creation and cached
// for the process lifetime.
type MarketSnapshot struct {
	Symbol    string
	Period    Period
	Info      map[string]interface{}
	History   []Candle
	FetchedAt time.Time
}

// SymbolQuery maps a user-facing company choice to a market-data symbol.
// ResolvedSymbol is non-empty once resolution has succeeded.
type SymbolQuery struct {
	DisplayName    string
	ResolvedSymbol string
}

// MetricCard is a display-only projection of one fundamentals field.
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
