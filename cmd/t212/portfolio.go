package main

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/equitybot/t212go/pkg/sdk/api"
)

func portfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio [ticker]",
		Short: "List open positions, or show one by ticker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var positions []api.Position
			if len(args) == 1 {
				pos, err := client.Position(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				positions = append(positions, *pos)
			} else {
				var err error
				positions, err = client.Portfolio(cmd.Context())
				if err != nil {
					return err
				}
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Ticker", "Quantity", "Avg price", "Cur price", "PPL", "FX PPL"})
			for _, p := range positions {
				table.Append([]string{
					p.Ticker, fmtDec(p.Quantity), fmtDec(p.AveragePrice),
					fmtDec(p.CurrentPrice), fmtDec(p.Ppl), fmtDecPtr(p.FxPpl),
				})
			}
			table.Render()
			return nil
		},
	}
}
