// Package dashboard orchestrates the stock analysis pipeline and exposes it
// over HTTP.
package dashboard

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankitrawat448/stock-analysis-agent/internal/agents"
	"github.com/ankitrawat448/stock-analysis-agent/internal/chart"
	"github.com/ankitrawat448/stock-analysis-agent/internal/config"
	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
	"github.com/ankitrawat448/stock-analysis-agent/internal/logging"
	"github.com/ankitrawat448/stock-analysis-agent/internal/market"
	"github.com/ankitrawat448/stock-analysis-agent/internal/metrics"
	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
	"github.com/ankitrawat448/stock-analysis-agent/internal/symbols"
)

// Request describes one analysis trigger.
type Request struct {
	// Company is a display choice from the known-company table, or
	// symbols.FreeTextChoice to use Symbol.
	Company string `json:"company"`
	// Symbol is the free-text ticker fallback.
	Symbol string `json:"symbol"`
	// Period selects the price history range; empty uses the default.
	Period string `json:"period"`
	// SkipNews disables the AI news summary for this request.
	SkipNews bool `json:"skip_news"`
}

// Report is the full analysis result. Stages that fail independently leave
// their section empty and record the failure instead of blocking the rest.
type Report struct {
	Symbol      string              `json:"symbol"`
	DisplayName string              `json:"display_name"`
	Period      string              `json:"period"`
	Metrics     []models.MetricCard `json:"metrics"`
	Chart       *chart.Spec         `json:"chart,omitempty"`
	Overview    string              `json:"overview,omitempty"`
	NewsSummary string              `json:"news_summary,omitempty"`
	NewsError   string              `json:"news_error,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
	FetchedAt   time.Time           `json:"fetched_at"`
}

// Pipeline runs the four-stage analysis flow:
// resolver -> fetcher -> formatter/chart-builder -> summarizer.
type Pipeline struct {
	cfg      *config.Config
	fetcher  *market.Fetcher
	registry *agents.Registry
	logger   zerolog.Logger
}

// NewPipeline creates an analysis pipeline.
func NewPipeline(cfg *config.Config, fetcher *market.Fetcher, registry *agents.Registry, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		fetcher:  fetcher,
		registry: registry,
		logger:   logger,
	}
}

// Analyze runs the pipeline to completion for one request. Resolution and
// fetch failures abort; empty history and news failures degrade to partial
// results.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (*Report, error) {
	query, err := symbols.Resolve(req.Company, req.Symbol)
	if err != nil {
		return nil, err
	}

	periodStr := req.Period
	if periodStr == "" {
		periodStr = p.cfg.Dashboard.DefaultPeriod
	}
	period, err := models.ParsePeriod(periodStr)
	if err != nil {
		return nil, apperrors.NewValidationError("period", periodStr, err.Error())
	}

	logger := logging.WithSymbol(p.logger, query.ResolvedSymbol)

	snap, err := p.fetcher.Fetch(ctx, query.ResolvedSymbol, period)
	if err != nil && !apperrors.Is(err, apperrors.ErrEmptyHistory) {
		return nil, err
	}

	report := &Report{
		Symbol:      snap.Symbol,
		DisplayName: query.DisplayName,
		Period:      string(period),
		Metrics:     metrics.FormatMetrics(snap.Info),
		FetchedAt:   snap.FetchedAt,
	}

	if len(snap.History) == 0 {
		report.Warnings = append(report.Warnings, apperrors.ErrEmptyHistory.Error())
	} else {
		report.Chart = chart.BuildPriceChart(snap.History, snap.Symbol)
	}

	if overview, ok := snap.Info["longBusinessSummary"].(string); ok {
		report.Overview = overview
	}

	if !req.SkipNews && p.cfg.NewsConfigured() {
		p.summarize(ctx, logger, report)
	}

	return report, nil
}

// summarize fills in the news summary, recording failures on the report
// instead of failing it.
func (p *Pipeline) summarize(ctx context.Context, logger zerolog.Logger, report *Report) {
	start := time.Now()

	if err := p.registry.Init(p.cfg); err != nil {
		report.NewsError = err.Error()
		logging.LogSummary(logger, report.Symbol, 0, time.Since(start), err)
		return
	}

	summarizer, err := p.registry.Summarizer()
	if err != nil {
		report.NewsError = err.Error()
		logging.LogSummary(logger, report.Symbol, 0, time.Since(start), err)
		return
	}

	summary, err := summarizer.SummarizeNews(ctx, report.Symbol)
	if err != nil {
		report.NewsError = err.Error()
		logging.LogSummary(logger, report.Symbol, 0, time.Since(start), err)
		return
	}

	report.NewsSummary = summary
	logging.LogSummary(logger, report.Symbol, len(summary), time.Since(start), nil)
}
