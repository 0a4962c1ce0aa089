package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account balances and identity",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cash",
		Short: "Show the account balance breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cash, err := client.AccountCash(cmd.Context())
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Free", "Invested", "Pie cash", "Blocked", "PPL", "Result", "Total"})
			table.Append([]string{
				fmtDec(cash.Free), fmtDec(cash.Invested), fmtDec(cash.PieCash),
				fmtDecPtr(cash.Blocked), fmtDec(cash.Ppl), fmtDec(cash.Result),
				fmtDec(cash.Total),
			})
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the account id and currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := client.AccountMetadata(cmd.Context())
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Currency"})
			table.Append([]string{strconv.FormatInt(meta.ID, 10), meta.CurrencyCode})
			table.Render()
			return nil
		},
	})

	return cmd
}
