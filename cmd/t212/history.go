package main

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/equitybot/t212go/pkg/sdk/api"
)

// historyFlags is the shared pagination flag set. --all loops pages
// client-side by feeding NextPagePath back as the cursor; the API never
// auto-follows.
type historyFlags struct {
	cursor string
	ticker string
	limit  int
	all    bool
}

func (f *historyFlags) register(cmd *cobra.Command, withTicker bool) {
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "page cursor from a previous call")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "page size")
	cmd.Flags().BoolVar(&f.all, "all", false, "follow pagination to the end")
	if withTicker {
		cmd.Flags().StringVar(&f.ticker, "ticker", "", "filter by ticker")
	}
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Paginated account history",
	}
	cmd.AddCommand(historyOrdersCmd(), historyDividendsCmd(), historyTransactionsCmd())
	return cmd
}

func historyOrdersCmd() *cobra.Command {
	var flags historyFlags
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Historical orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Ticker", "Type", "Status", "Fill price", "Created"})

			cursor := flags.cursor
			for {
				page, err := client.OrderHistory(cmd.Context(), api.HistoryQuery{
					Cursor: cursor,
					Ticker: flags.ticker,
					Limit:  flags.limit,
				})
				if err != nil {
					return err
				}
				for _, o := range page.Items {
					table.Append([]string{
						strconv.FormatInt(o.ID, 10), o.Ticker, string(o.Type),
						string(o.Status), fmtDecPtr(o.FillPrice),
						o.DateCreated.Format(time.RFC3339),
					})
				}
				cursor = page.NextPagePath
				if !flags.all || cursor == "" {
					break
				}
			}

			table.Render()
			if cursor != "" {
				cmd.Printf("next cursor: %s\n", cursor)
			}
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func historyDividendsCmd() *cobra.Command {
	var flags historyFlags
	cmd := &cobra.Command{
		Use:   "dividends",
		Short: "Paid-out dividends",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Ticker", "Amount", "Per share", "Quantity", "Paid on"})

			cursor := flags.cursor
			for {
				page, err := client.Dividends(cmd.Context(), api.HistoryQuery{
					Cursor: cursor,
					Ticker: flags.ticker,
					Limit:  flags.limit,
				})
				if err != nil {
					return err
				}
				for _, d := range page.Items {
					table.Append([]string{
						d.Ticker, fmtDec(d.Amount), fmtDec(d.GrossAmountPerShare),
						fmtDec(d.Quantity), d.PaidOn.Format(time.RFC3339),
					})
				}
				cursor = page.NextPagePath
				if !flags.all || cursor == "" {
					break
				}
			}

			table.Render()
			if cursor != "" {
				cmd.Printf("next cursor: %s\n", cursor)
			}
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func historyTransactionsCmd() *cobra.Command {
	var flags historyFlags
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Cash movements on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Reference", "Type", "Amount", "Date"})

			cursor := flags.cursor
			for {
				page, err := client.Transactions(cmd.Context(), api.TransactionQuery{
					Cursor: cursor,
					Limit:  flags.limit,
				})
				if err != nil {
					return err
				}
				for _, tx := range page.Items {
					table.Append([]string{
						tx.Reference, tx.Type, fmtDec(tx.Amount),
						tx.DateTime.Format(time.RFC3339),
					})
				}
				cursor = page.NextPagePath
				if !flags.all || cursor == "" {
					break
				}
			}

			table.Render()
			if cursor != "" {
				cmd.Printf("next cursor: %s\n", cursor)
			}
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}
