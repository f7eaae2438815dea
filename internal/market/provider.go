// Package market fetches company fundamentals and price history from a
// market-data provider and caches the results per (symbol, period).
package market

import (
	"context"

	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
)

// Provider defines the market-data provider boundary. It returns the
// fundamentals mapping and the historical candles for one symbol and period.
type Provider interface {
	// Info fetches current metadata and fundamentals for a symbol.
	Info(ctx context.Context, symbol string) (map[string]interface{}, error)
	// History fetches daily OHLCV candles covering the period.
	History(ctx context.Context, symbol string, period models.Period) ([]models.Candle, error)
}
