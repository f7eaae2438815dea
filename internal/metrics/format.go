// Package metrics projects raw company fundamentals into display-ready
// metric cards.
package metrics

import (
	"fmt"
	"math"
	"strings"

	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
	"github.com/ankitrawat448/stock-analysis-agent/pkg/utils"
)

// NotAvailable is rendered for missing or null values.
const NotAvailable = "N/A"

// FormatNumber renders a fundamentals value for display.
//
// Policy: nil -> "N/A"; currency mode -> fixed 2-decimal with $ prefix and
// thousands separators; magnitude >= 1e9 -> billions with " B" suffix;
// magnitude >= 1e6 -> millions with " M" suffix; other numerics -> fixed
// 2-decimal; non-numeric values pass through unchanged.
func FormatNumber(value interface{}, currency bool) string {
	if value == nil {
		return NotAvailable
	}

	num, ok := asFloat(value)
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	if currency {
		return "$" + utils.GroupThousands(num)
	}

	abs := math.Abs(num)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2f B", num/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2f M", num/1e6)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}

// FormatRecommendation renders an analyst recommendation key such as
// "strong_buy" as "Strong Buy". Missing values resolve to "N/A".
func FormatRecommendation(value interface{}) string {
	if value == nil {
		return NotAvailable
	}
	key, ok := value.(string)
	if !ok || strings.TrimSpace(key) == "" {
		return NotAvailable
	}

	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// FormatMetrics derives the six metric cards from the fundamentals mapping,
// in fixed order. Cards are recomputed on every render and never cached.
func FormatMetrics(info map[string]interface{}) []models.MetricCard {
	return []models.MetricCard{
		{Label: "Current Price", Value: FormatNumber(info["currentPrice"], true)},
		{Label: "Market Cap", Value: FormatNumber(info["marketCap"], false)},
		{Label: "Beta", Value: FormatNumber(info["beta"], false)},
		{Label: "Forward P/E", Value: FormatNumber(info["forwardPE"], false)},
		{Label: "EPS", Value: FormatNumber(info["trailingEps"], false)},
		{Label: "Recommendation", Value: FormatRecommendation(info["recommendationKey"])},
	}
}

func asFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
