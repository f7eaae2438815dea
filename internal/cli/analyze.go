package cli

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ankitrawat448/stock-analysis-agent/internal/dashboard"
	"github.com/ankitrawat448/stock-analysis-agent/pkg/utils"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <company|symbol>",
		Short: "Analyze a stock: metrics, chart spec, and AI news summary",
		Long: `Resolve a company name or ticker, fetch fundamentals and price history,
and print the six valuation metric cards, the company overview, and an
AI-generated news digest. The candlestick chart specification can be
written to a file with --chart-out for an external renderer.`,
		Example: `  stockdash analyze NVIDIA
  stockdash analyze TSLA --period 6mo
  stockdash analyze RELIANCE --no-news --chart-out chart.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
			defer cancel()

			period, _ := cmd.Flags().GetString("period")
			noNews, _ := cmd.Flags().GetBool("no-news")
			chartOut, _ := cmd.Flags().GetString("chart-out")

			report, err := app.Pipeline.Analyze(ctx, dashboard.Request{
				Company:  args[0],
				Symbol:   args[0],
				Period:   period,
				SkipNews: noNews,
			})
			if err != nil {
				output.Error("Analysis failed: %v", err)
				return err
			}

			if chartOut != "" && report.Chart != nil {
				data, err := json.MarshalIndent(report.Chart, "", "  ")
				if err == nil {
					err = os.WriteFile(chartOut, data, 0644)
				}
				if err != nil {
					output.Warning("Could not write chart spec: %v", err)
				} else {
					output.Success("Chart spec written to %s", chartOut)
				}
			}

			if output.IsJSON() {
				return output.JSON(report)
			}

			renderReport(output, report)
			return nil
		},
	}

	cmd.Flags().String("period", "", "Price history period: 1mo, 3mo, 6mo, 1y, 2y")
	cmd.Flags().Bool("no-news", false, "Skip the AI news summary")
	cmd.Flags().String("chart-out", "", "Write the candlestick chart spec JSON to this file")

	return cmd
}

func renderReport(output *Output, report *dashboard.Report) {
	color.Cyan("📊 %s (%s, %s)", report.DisplayName, report.Symbol, report.Period)
	output.Println()

	for _, warning := range report.Warnings {
		output.Warning("⚠ %s", warning)
	}

	for _, card := range report.Metrics {
		output.Printf("  %-16s %s\n", card.Label, card.Value)
	}

	if report.Chart != nil && len(report.Chart.Data) > 0 {
		trace := report.Chart.Data[0]
		n := len(trace.Close)
		if n > 0 {
			change := utils.ChangePercent(trace.Close[0], trace.Close[n-1])
			output.Println()
			output.Printf("  %d trading days, %s to %s, change %s\n",
				n, trace.X[0], trace.X[n-1], utils.FormatPercent(change))
		}
	}

	if report.Overview != "" {
		output.Println()
		color.Cyan("📄 Company Overview")
		output.Println(report.Overview)
	}

	if report.NewsSummary != "" {
		output.Println()
		color.Cyan("📰 AI Summary")
		output.Println(report.NewsSummary)
	}
	if report.NewsError != "" {
		output.Println()
		output.Error("Agent summary error: %s", report.NewsError)
	}
}
