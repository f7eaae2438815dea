package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
)

const (
	defaultChartBaseURL   = "https://query1.finance.yahoo.com/v8/finance/chart"
	defaultSummaryBaseURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"

	// quoteSummary modules needed for the six metric cards and the overview.
	summaryModules = "price,summaryDetail,defaultKeyStatistics,financialData,assetProfile"
)

// YahooProvider implements Provider using the Yahoo Finance public API.
type YahooProvider struct {
	Client         *http.Client
	ChartBaseURL   string
	SummaryBaseURL string
}

// NewYahooProvider creates a new Yahoo Finance provider.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		ChartBaseURL:   defaultChartBaseURL,
		SummaryBaseURL: defaultSummaryBaseURL,
	}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooSummary is the response structure from the quoteSummary API.
// Numeric fields arrive as {raw, fmt} objects; only raw is used.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				ShortName string   `json:"shortName"`
				Currency  string   `json:"currency"`
				MarketCap rawValue `json:"marketCap"`
			} `json:"price"`
			SummaryDetail struct {
				Beta      rawValue `json:"beta"`
				ForwardPE rawValue `json:"forwardPE"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				TrailingEps rawValue `json:"trailingEps"`
				ForwardPE   rawValue `json:"forwardPE"`
			} `json:"defaultKeyStatistics"`
			FinancialData struct {
				CurrentPrice      rawValue `json:"currentPrice"`
				RecommendationKey string   `json:"recommendationKey"`
			} `json:"financialData"`
			AssetProfile struct {
				LongBusinessSummary string `json:"longBusinessSummary"`
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// rawValue unwraps Yahoo's {raw, fmt} numeric objects.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (p *YahooProvider) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// History fetches daily OHLCV candles covering the period.
func (p *YahooProvider) History(ctx context.Context, symbol string, period models.Period) ([]models.Candle, error) {
	u := fmt.Sprintf("%s/%s?interval=1d&range=%s",
		p.ChartBaseURL, url.PathEscape(symbol), string(period))

	body, err := p.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return []models.Candle{}, nil
	}

	quote := result.Indicators.Quote[0]
	// Thin or delisted symbols can come back with quote arrays shorter
	// than the timestamp list.
	n := len(result.Timestamp)
	if len(quote.Open) < n || len(quote.High) < n || len(quote.Low) < n ||
		len(quote.Close) < n || len(quote.Volume) < n {
		return nil, fmt.Errorf("yahoo decode: quote arrays shorter than %d timestamps for %s", n, symbol)
	}

	candles := make([]models.Candle, 0, n)
	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		candles = append(candles, models.Candle{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      o,
			High:      h,
			Low:       l,
			Close:     c,
			Volume:    int64(toFloat(quote.Volume[i])),
		})
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Timestamp.Before(candles[j].Timestamp) })
	return candles, nil
}

// Info fetches current metadata and fundamentals for a symbol.
func (p *YahooProvider) Info(ctx context.Context, symbol string) (map[string]interface{}, error) {
	u := fmt.Sprintf("%s/%s?modules=%s",
		p.SummaryBaseURL, url.PathEscape(symbol), summaryModules)

	body, err := p.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: unknown symbol %s", symbol)
	}

	r := summary.QuoteSummary.Result[0]
	info := map[string]interface{}{}

	putFloat := func(key string, v rawValue) {
		if v.Raw != nil {
			info[key] = *v.Raw
		}
	}
	putString := func(key, v string) {
		if v != "" {
			info[key] = v
		}
	}

	putFloat("currentPrice", r.FinancialData.CurrentPrice)
	putFloat("marketCap", r.Price.MarketCap)
	putFloat("beta", r.SummaryDetail.Beta)
	if r.SummaryDetail.ForwardPE.Raw != nil {
		info["forwardPE"] = *r.SummaryDetail.ForwardPE.Raw
	} else {
		putFloat("forwardPE", r.DefaultKeyStatistics.ForwardPE)
	}
	putFloat("trailingEps", r.DefaultKeyStatistics.TrailingEps)
	putString("recommendationKey", r.FinancialData.RecommendationKey)
	putString("longBusinessSummary", r.AssetProfile.LongBusinessSummary)
	putString("shortName", r.Price.ShortName)
	putString("currency", r.Price.Currency)
	putString("sector", r.AssetProfile.Sector)
	putString("industry", r.AssetProfile.Industry)

	return info, nil
}
