// Package symbols resolves user-facing company choices to market-data tickers.
package symbols

import (
	"sort"
	"strings"

	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
)

// FreeTextChoice is the selector value that routes to the free-text symbol input.
const FreeTextChoice = "Other"

// commonStocks maps well-known company names to their tickers.
// NSE-listed companies carry the .NS suffix.
var commonStocks = map[string]string{
	"NVIDIA":     "NVDA",
	"APPLE":      "AAPL",
	"GOOGLE":     "GOOGL",
	"MICROSOFT":  "MSFT",
	"TESLA":      "TSLA",
	"AMAZON":     "AMZN",
	"META":       "META",
	"NETFLIX":    "NFLX",
	"TCS":        "TCS.NS",
	"RELIANCE":   "RELIANCE.NS",
	"INFOSYS":    "INFY.NS",
	"WIPRO":      "WIPRO.NS",
	"HDFC":       "HDFCBANK.NS",
	"TATAMOTORS": "TATAMOTORS.NS",
	"ICICIBANK":  "ICICIBANK.NS",
	"SBIN":       "SBIN.NS",
}

// Names returns all known company names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(commonStocks))
	for name := range commonStocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the ticker for a known company name.
func Lookup(name string) (string, bool) {
	ticker, ok := commonStocks[strings.ToUpper(strings.TrimSpace(name))]
	return ticker, ok
}

// Resolve maps a company choice (or free-text ticker fallback) to a symbol.
// A known company name wins; the FreeTextChoice selector and unknown names
// fall back to the trimmed free-text ticker. An empty result is an
// ErrInvalidSymbol: the pipeline must not fetch without a symbol.
func Resolve(displayChoice, freeTextFallback string) (models.SymbolQuery, error) {
	choice := strings.TrimSpace(displayChoice)

	if choice != "" && !strings.EqualFold(choice, FreeTextChoice) {
		if ticker, ok := Lookup(choice); ok {
			return models.SymbolQuery{
				DisplayName:    strings.ToUpper(choice),
				ResolvedSymbol: ticker,
			}, nil
		}
	}

	ticker := strings.ToUpper(strings.TrimSpace(freeTextFallback))
	if ticker == "" {
		return models.SymbolQuery{}, apperrors.ErrInvalidSymbol
	}

	display := ticker
	if choice != "" && !strings.EqualFold(choice, FreeTextChoice) {
		display = strings.ToUpper(choice)
	}
	return models.SymbolQuery{
		DisplayName:    display,
		ResolvedSymbol: ticker,
	}, nil
}
