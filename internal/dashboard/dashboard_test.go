package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankitrawat448/stock-analysis-agent/internal/agents"
	"github.com/ankitrawat448/stock-analysis-agent/internal/config"
	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
	"github.com/ankitrawat448/stock-analysis-agent/internal/market"
	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
	"github.com/ankitrawat448/stock-analysis-agent/internal/symbols"
)

// fakeProvider serves in-memory market data.
type fakeProvider struct {
	info    map[string]interface{}
	history []models.Candle
	infoErr error
}

func (f *fakeProvider) Info(ctx context.Context, symbol string) (map[string]interface{}, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

func (f *fakeProvider) History(ctx context.Context, symbol string, period models.Period) ([]models.Candle, error) {
	return f.history, nil
}

func sampleInfo() map[string]interface{} {
	return map[string]interface{}{
		"currentPrice":        182.5,
		"marketCap":           2.8e12,
		"beta":                1.24,
		"forwardPE":           27.5,
		"trailingEps":         6.42,
		"recommendationKey":   "buy",
		"longBusinessSummary": "Designs consumer electronics.",
	}
}

func sampleHistory() []models.Candle {
	return []models.Candle{
		{Timestamp: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), Open: 180, High: 184, Low: 179, Close: 182.5, Volume: 1000},
		{Timestamp: time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), Open: 182.5, High: 186, Low: 181, Close: 185, Volume: 1200},
	}
}

func newTestPipeline(t *testing.T, provider market.Provider, cfg *config.Config) *Pipeline {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Dashboard.DefaultPeriod = "1y"
	}
	logger := zerolog.Nop()
	fetcher := market.NewFetcher(provider, logger)
	return NewPipeline(cfg, fetcher, agents.NewRegistry(), logger)
}

func TestAnalyzeFullReport(t *testing.T) {
	p := newTestPipeline(t, &fakeProvider{info: sampleInfo(), history: sampleHistory()}, nil)

	report, err := p.Analyze(context.Background(), Request{Company: "Apple"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Symbol != "AAPL" {
		t.Errorf("symbol = %q", report.Symbol)
	}
	if report.Period != "1y" {
		t.Errorf("period = %q, want default 1y", report.Period)
	}
	if len(report.Metrics) != 6 {
		t.Fatalf("got %d metric cards, want 6", len(report.Metrics))
	}
	if report.Chart == nil {
		t.Fatal("chart missing despite non-empty history")
	}
	if report.Overview != "Designs consumer electronics." {
		t.Errorf("overview = %q", report.Overview)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
	// News stays off without credentials.
	if report.NewsSummary != "" || report.NewsError != "" {
		t.Errorf("news should be skipped: summary=%q error=%q", report.NewsSummary, report.NewsError)
	}
}

func TestAnalyzeEmptyHistoryIsPartial(t *testing.T) {
	p := newTestPipeline(t, &fakeProvider{info: sampleInfo(), history: nil}, nil)

	report, err := p.Analyze(context.Background(), Request{Company: symbols.FreeTextChoice, Symbol: "zzzz"})
	if err != nil {
		t.Fatalf("empty history must not abort the report: %v", err)
	}

	if report.Chart != nil {
		t.Error("chart must be omitted when history is empty")
	}
	if len(report.Metrics) != 6 {
		t.Errorf("metrics must still render, got %d cards", len(report.Metrics))
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "no historical data") {
		t.Errorf("warnings = %v", report.Warnings)
	}
}

func TestAnalyzeInvalidInputs(t *testing.T) {
	p := newTestPipeline(t, &fakeProvider{info: sampleInfo(), history: sampleHistory()}, nil)

	_, err := p.Analyze(context.Background(), Request{Company: symbols.FreeTextChoice, Symbol: "   "})
	if !apperrors.Is(err, apperrors.ErrInvalidSymbol) {
		t.Errorf("blank symbol: got %v, want ErrInvalidSymbol", err)
	}

	_, err = p.Analyze(context.Background(), Request{Company: "Apple", Period: "10y"})
	var vErr *apperrors.ValidationError
	if !apperrors.As(err, &vErr) {
		t.Errorf("bad period: got %T (%v), want *ValidationError", err, err)
	}
}

func TestAnalyzeFetchFailureAborts(t *testing.T) {
	p := newTestPipeline(t, &fakeProvider{infoErr: fmt.Errorf("upstream 500")}, nil)

	_, err := p.Analyze(context.Background(), Request{Company: "Apple"})
	var fErr *apperrors.FetchError
	if !apperrors.As(err, &fErr) {
		t.Fatalf("got %T (%v), want *FetchError", err, err)
	}
}

func TestAnalyzeNewsFailureRecordedNotFatal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dashboard.DefaultPeriod = "1y"
	cfg.Dashboard.NewsEnabled = true
	cfg.Credentials.Groq.APIKey = "present-but-unused"

	logger := zerolog.Nop()
	fetcher := market.NewFetcher(&fakeProvider{info: sampleInfo(), history: sampleHistory()}, logger)
	registry := agents.NewRegistry()
	p := NewPipeline(cfg, fetcher, registry, logger)

	// Force the registry into its failed state before the pipeline runs.
	badCfg := &config.Config{}
	_ = registry.Init(badCfg)

	report, err := p.Analyze(context.Background(), Request{Company: "Apple"})
	if err != nil {
		t.Fatalf("news failure must not fail the report: %v", err)
	}
	if report.NewsError == "" {
		t.Error("news error should be recorded on the report")
	}
	if report.Chart == nil || len(report.Metrics) != 6 {
		t.Error("market sections must survive a news failure")
	}
}

func newTestServer(t *testing.T, provider market.Provider) *httptest.Server {
	t.Helper()
	p := newTestPipeline(t, provider, nil)
	srv := NewServer(":0", p, zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleSymbols(t *testing.T) {
	ts := newTestServer(t, &fakeProvider{})

	resp, err := http.Get(ts.URL + "/api/symbols")
	if err != nil {
		t.Fatalf("GET /api/symbols: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Companies []string `json:"companies"`
		Periods   []string `json:"periods"`
		FreeText  string   `json:"free_text_choice"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Companies) == 0 || len(body.Periods) == 0 {
		t.Errorf("empty listing: %+v", body)
	}
	if body.FreeText != symbols.FreeTextChoice {
		t.Errorf("free text choice = %q", body.FreeText)
	}
}

func postAnalyze(t *testing.T, ts *httptest.Server, req Request) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(req)
	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /api/analyze: %v", err)
	}
	return resp
}

func TestHandleAnalyzeOK(t *testing.T) {
	ts := newTestServer(t, &fakeProvider{info: sampleInfo(), history: sampleHistory()})

	resp := postAnalyze(t, ts, Request{Company: "Apple"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Symbol != "AAPL" || len(report.Metrics) != 6 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestHandleAnalyzeBadRequest(t *testing.T) {
	ts := newTestServer(t, &fakeProvider{info: sampleInfo(), history: sampleHistory()})

	resp := postAnalyze(t, ts, Request{Company: symbols.FreeTextChoice, Symbol: ""})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank symbol status = %d, want 400", resp.StatusCode)
	}

	resp = postAnalyze(t, ts, Request{Company: "Apple", Period: "forever"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad period status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleAnalyzeUpstreamFailure(t *testing.T) {
	ts := newTestServer(t, &fakeProvider{infoErr: fmt.Errorf("upstream 500")})

	resp := postAnalyze(t, ts, Request{Company: "Apple"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body missing")
	}
}
