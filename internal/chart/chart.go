// Package chart builds chart specifications for the dashboard's opaque
// front-end renderer.
package chart

import (
	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
)

// Spec is a renderer-ready chart description: one candlestick trace plus
// layout. Field names follow the plotly wire shape the front end consumes.
type Spec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single candlestick series keyed by date.
type Trace struct {
	Type  string    `json:"type"`
	Name  string    `json:"name"`
	X     []string  `json:"x"`
	Open  []float64 `json:"open"`
	High  []float64 `json:"high"`
	Low   []float64 `json:"low"`
	Close []float64 `json:"close"`
}

// Layout holds axis and sizing configuration.
type Layout struct {
	Title    string `json:"title"`
	Template string `json:"template"`
	Height   int    `json:"height"`
	XAxis    XAxis  `json:"xaxis"`
}

// XAxis configures the x axis.
type XAxis struct {
	RangeSlider RangeSlider `json:"rangeslider"`
}

// RangeSlider toggles the x-axis range slider.
type RangeSlider struct {
	Visible bool `json:"visible"`
}

const (
	chartHeight = 500
	dateLayout  = "2006-01-02"
)

// BuildPriceChart produces a candlestick spec from the full supplied history.
// Pure function of its input: no resampling, no gap-filling, no decimation.
// Empty history yields an empty but valid spec.
func BuildPriceChart(history []models.Candle, symbol string) *Spec {
	trace := Trace{
		Type:  "candlestick",
		Name:  "OHLC",
		X:     make([]string, 0, len(history)),
		Open:  make([]float64, 0, len(history)),
		High:  make([]float64, 0, len(history)),
		Low:   make([]float64, 0, len(history)),
		Close: make([]float64, 0, len(history)),
	}

	for _, c := range history {
		trace.X = append(trace.X, c.Timestamp.Format(dateLayout))
		trace.Open = append(trace.Open, c.Open)
		trace.High = append(trace.High, c.High)
		trace.Low = append(trace.Low, c.Low)
		trace.Close = append(trace.Close, c.Close)
	}

	return &Spec{
		Data: []Trace{trace},
		Layout: Layout{
			Title:    symbol + " Price Chart",
			Template: "plotly_white",
			Height:   chartHeight,
			XAxis: XAxis{
				RangeSlider: RangeSlider{Visible: false},
			},
		},
	}
}
