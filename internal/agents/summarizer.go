package agents

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
)

// SummarizerOptions configures the news summarizer.
type SummarizerOptions struct {
	MaxNewsItems   int
	NewsWindowDays int
}

// Summarizer produces short natural-language digests of recent company news
// using a web search followed by an LLM summarization pass.
type Summarizer struct {
	llm    LLMClient
	search WebSearchClient
	opts   SummarizerOptions
}

// NewSummarizer creates a news summarizer. The search client may be nil, in
// which case the LLM works from its prompt alone.
func NewSummarizer(llm LLMClient, search WebSearchClient, opts SummarizerOptions) *Summarizer {
	if opts.MaxNewsItems <= 0 {
		opts.MaxNewsItems = 5
	}
	if opts.NewsWindowDays <= 0 {
		opts.NewsWindowDays = 7
	}
	return &Summarizer{
		llm:    llm,
		search: search,
		opts:   opts,
	}
}

const summarySystemPrompt = `You are a financial news analyst.
Summarize the latest relevant company news for the requested stock in a short digest.
Focus on material developments: earnings, guidance, products, regulation, analyst moves.
Write 3-6 sentences of plain prose. Do not invent facts not present in the provided context.`

// SummarizeNews returns a digest of recent news about symbol, verbatim from
// the agent. Search failures are soft; LLM failures surface as AgentError.
func (s *Summarizer) SummarizeNews(ctx context.Context, symbol string) (string, error) {
	prompt := fmt.Sprintf("Summarize the latest relevant company news about %s from the last %d days.",
		symbol, s.opts.NewsWindowDays)

	searchContext := s.gatherNews(ctx, symbol)
	if searchContext != "" {
		prompt = prompt + "\n\nRecent news found by web search:\n" + searchContext
	}

	response, err := s.llm.CompleteWithSystem(ctx, summarySystemPrompt, prompt)
	if err != nil {
		return "", apperrors.NewAgentError("summarize_news", err)
	}
	return response, nil
}

// gatherNews collects web search context for the prompt. Any failure here
// degrades to an empty context rather than failing the summary.
func (s *Summarizer) gatherNews(ctx context.Context, symbol string) string {
	if s.search == nil {
		return ""
	}

	query := fmt.Sprintf("%s stock news last %d days", symbol, s.opts.NewsWindowDays)
	results, err := s.search.Search(ctx, query, s.opts.MaxNewsItems)
	if err != nil || len(results) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range results {
		if i >= s.opts.MaxNewsItems {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, r.Title))
		if r.Content != "" {
			sb.WriteString("   " + truncateString(r.Content, 500) + "\n")
		}
		if r.URL != "" {
			sb.WriteString("   Source: " + r.URL + "\n")
		}
	}
	return sb.String()
}

// truncateString shortens s to at most maxLen bytes without splitting a
// multi-byte rune.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
