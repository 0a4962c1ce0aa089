package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func exchangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchanges",
		Short: "List trading venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			exchanges, err := client.Exchanges(cmd.Context())
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Schedules"})
			for _, e := range exchanges {
				table.Append([]string{
					strconv.Itoa(e.ID), e.Name,
					strconv.Itoa(len(e.WorkingSchedules)),
				})
			}
			table.Render()
			return nil
		},
	}
}

func instrumentsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "instruments",
		Short: "List tradable instruments",
		RunE: func(cmd *cobra.Command, args []string) error {
			instruments, err := client.Instruments(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(instruments) > limit {
				instruments = instruments[:limit]
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Ticker", "Name", "Type", "Currency", "ISIN"})
			for _, in := range instruments {
				table.Append([]string{in.Ticker, in.Name, in.Type, in.CurrencyCode, in.ISIN})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many rows (0 = all)")
	return cmd
}
