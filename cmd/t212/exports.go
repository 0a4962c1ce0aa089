package main

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/equitybot/t212go/pkg/sdk/api"
)

func exportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exports",
		Short: "CSV export jobs",
	}
	cmd.AddCommand(exportsListCmd(), exportsRequestCmd())
	return cmd
}

func exportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List export jobs and their states",
		RunE: func(cmd *cobra.Command, args []string) error {
			exports, err := client.Exports(cmd.Context())
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Report", "Status", "From", "To", "Download"})
			for _, e := range exports {
				table.Append([]string{
					strconv.FormatInt(e.ReportID, 10), string(e.Status),
					e.TimeFrom.Format(time.RFC3339), e.TimeTo.Format(time.RFC3339),
					e.DownloadLink,
				})
			}
			table.Render()
			return nil
		},
	}
}

func exportsRequestCmd() *cobra.Command {
	var (
		from, to     string
		orders       bool
		dividends    bool
		interest     bool
		transactions bool
	)
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Queue a CSV export over a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			timeFrom, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return errors.Wrap(err, "parsing --from")
			}
			timeTo, err := time.Parse(time.RFC3339, to)
			if err != nil {
				return errors.Wrap(err, "parsing --to")
			}
			report, err := client.RequestExport(cmd.Context(), api.ExportRequest{
				DataIncluded: api.DataIncluded{
					IncludeOrders:       orders,
					IncludeDividends:    dividends,
					IncludeInterest:     interest,
					IncludeTransactions: transactions,
				},
				TimeFrom: timeFrom,
				TimeTo:   timeTo,
			})
			if err != nil {
				return err
			}
			cmd.Printf("queued report %d\n", report.ReportID)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "range start, RFC3339")
	cmd.Flags().StringVar(&to, "to", "", "range end, RFC3339")
	cmd.Flags().BoolVar(&orders, "orders", true, "include orders")
	cmd.Flags().BoolVar(&dividends, "dividends", true, "include dividends")
	cmd.Flags().BoolVar(&interest, "interest", true, "include interest")
	cmd.Flags().BoolVar(&transactions, "transactions", true, "include transactions")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
