package symbols

import (
	"testing"

	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
)

func TestResolveKnownCompanies(t *testing.T) {
	cases := map[string]string{
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

	for name, want := range cases {
		query, err := Resolve(name, "")
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error %v", name, err)
			continue
		}
		if query.ResolvedSymbol != want {
			t.Errorf("Resolve(%q) = %q, want %q", name, query.ResolvedSymbol, want)
		}
	}
}

func TestResolveCaseInsensitiveName(t *testing.T) {
	query, err := Resolve("nvidia", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.ResolvedSymbol != "NVDA" {
		t.Errorf("got %q, want NVDA", query.ResolvedSymbol)
	}
}

func TestResolveFreeTextRoundTrip(t *testing.T) {
	// A valid ticker passes through unchanged (idempotent).
	query, err := Resolve(FreeTextChoice, "NVDA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.ResolvedSymbol != "NVDA" {
		t.Errorf("got %q, want NVDA", query.ResolvedSymbol)
	}

	// Whitespace is trimmed and case normalized.
	query, err = Resolve(FreeTextChoice, "  amd ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.ResolvedSymbol != "AMD" {
		t.Errorf("got %q, want AMD", query.ResolvedSymbol)
	}
}

func TestResolveUnknownNameFallsBack(t *testing.T) {
	// An unknown display choice uses the free-text fallback.
	query, err := Resolve("SOMECOMPANY", "SOME.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.ResolvedSymbol != "SOME.NS" {
		t.Errorf("got %q, want SOME.NS", query.ResolvedSymbol)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	for _, fallback := range []string{"", "   ", "\t"} {
		_, err := Resolve(FreeTextChoice, fallback)
		if !apperrors.Is(err, apperrors.ErrInvalidSymbol) {
			t.Errorf("Resolve(Other, %q): got %v, want ErrInvalidSymbol", fallback, err)
		}
	}
}

func TestNamesCoversTable(t *testing.T) {
	names := Names()
	if len(names) != len(commonStocks) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(commonStocks))
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Names() entry %q not resolvable via Lookup", name)
		}
	}
}
