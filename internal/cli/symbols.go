package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ankitrawat448/stock-analysis-agent/internal/symbols"
)

func newSymbolsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List known companies and their tickers",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if output.IsJSON() {
				table := map[string]string{}
				for _, name := range symbols.Names() {
					ticker, _ := symbols.Lookup(name)
					table[name] = ticker
				}
				return output.JSON(table)
			}

			color.Cyan("Known companies")
			for _, name := range symbols.Names() {
				ticker, _ := symbols.Lookup(name)
				output.Printf("  %-12s %s\n", name, ticker)
			}
			output.Println()
			output.Info("Any other ticker is accepted as free text, e.g. 'stockdash analyze AMD'")
			return nil
		},
	}
}
