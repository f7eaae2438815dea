// Package cli provides the command-line interface for the stock dashboard.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ankitrawat448/stock-analysis-agent/internal/agents"
	"github.com/ankitrawat448/stock-analysis-agent/internal/config"
	"github.com/ankitrawat448/stock-analysis-agent/internal/dashboard"
	"github.com/ankitrawat448/stock-analysis-agent/internal/logging"
	"github.com/ankitrawat448/stock-analysis-agent/internal/market"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Fetcher  *market.Fetcher
	Registry *agents.Registry
	Pipeline *dashboard.Pipeline
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Fetcher:  market.NewFetcher(market.NewYahooProvider(), logger),
		Registry: agents.NewRegistry(),
	}
	app.Pipeline = dashboard.NewPipeline(cfg, app.Fetcher, app.Registry, logger)

	rootCmd := &cobra.Command{
		Use:   "stockdash",
		Short: "Stock Dashboard - market data, valuation metrics, and AI news summaries",
		Long: `Stock Dashboard fetches recent price history and fundamentals for a
publicly traded company, renders a candlestick chart specification,
derives valuation metric cards, and produces an AI news summary.

Use 'stockdash analyze <company|symbol>' for a one-shot terminal report,
or 'stockdash serve' to host the interactive dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newSymbolsCmd(app))
	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("stockdash %s\n", Version)
		},
	}
}
