package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ankitrawat448/stock-analysis-agent/internal/dashboard"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the interactive dashboard over HTTP",
		Long: `Serve the single-page dashboard: company and period selection, the
candlestick chart, six valuation metric cards, the company overview, and
the AI news summary. Stops on SIGINT/SIGTERM.`,
		Example: `  stockdash serve
  stockdash serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Config.Dashboard.ListenAddr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := dashboard.NewServer(addr, app.Pipeline, app.Logger)
			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default from config)")
	return cmd
}
