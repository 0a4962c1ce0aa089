package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/equitybot/t212go/pkg/sdk/api"
)

func piesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pies",
		Short: "Manage pies",
	}
	cmd.AddCommand(piesListCmd(), piesGetCmd(), piesCreateCmd(), piesUpdateCmd(), piesDeleteCmd())
	return cmd
}

func piesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pies in summary form",
		RunE: func(cmd *cobra.Command, args []string) error {
			pies, err := client.Pies(cmd.Context())
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Cash", "Progress", "Status"})
			for _, p := range pies {
				table.Append([]string{
					strconv.Itoa(p.ID), fmtDec(p.Cash),
					fmtDecPtr(p.Progress), p.Status,
				})
			}
			table.Render()
			return nil
		},
	}
}

func piesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one pie with holdings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "pie id must be a number")
			}
			pie, err := client.Pie(cmd.Context(), id)
			if err != nil {
				return err
			}
			cmd.Printf("pie %d %q goal=%s\n", pie.Settings.ID, pie.Settings.Name, fmtDec(pie.Settings.Goal))
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Ticker", "Owned", "Current share", "Expected share"})
			for _, in := range pie.Instruments {
				table.Append([]string{
					in.Ticker, fmtDecPtr(in.OwnedQuantity),
					fmtDecPtr(in.CurrentShare), fmtDecPtr(in.ExpectedShare),
				})
			}
			table.Render()
			return nil
		},
	}
}

// pieFlags collects the shared create/update flag set into a PieRequest.
type pieFlags struct {
	name           string
	goal           string
	dividendAction string
	icon           string
	shares         []string
}

func (f *pieFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "pie name")
	cmd.Flags().StringVar(&f.goal, "goal", "", "goal amount")
	cmd.Flags().StringVar(&f.dividendAction, "dividend-action", "", "REINVEST or TO_ACCOUNT_CASH")
	cmd.Flags().StringVar(&f.icon, "icon", "", "pie icon name")
	cmd.Flags().StringArrayVar(&f.shares, "share", nil, "allocation as ticker=weight, repeatable")
}

func (f *pieFlags) request() (api.PieRequest, error) {
	req := api.PieRequest{Name: f.name}
	if f.goal != "" {
		goal, err := decimal.NewFromString(f.goal)
		if err != nil {
			return req, errors.Wrap(err, "parsing --goal")
		}
		req.Goal = goal
	}
	if f.dividendAction != "" {
		req.DividendCashAction = api.DividendCashAction(f.dividendAction)
	}
	if f.icon != "" {
		icon := api.Icon(f.icon)
		req.Icon = &icon
	}
	if len(f.shares) > 0 {
		req.InstrumentShares = make(map[string]decimal.Decimal, len(f.shares))
		for _, s := range f.shares {
			ticker, weight, ok := strings.Cut(s, "=")
			if !ok {
				return req, errors.Errorf("bad --share %q, want ticker=weight", s)
			}
			w, err := decimal.NewFromString(weight)
			if err != nil {
				return req, errors.Wrapf(err, "parsing weight in --share %q", s)
			}
			req.InstrumentShares[ticker] = w
		}
	}
	return req, nil
}

func piesCreateCmd() *cobra.Command {
	var flags pieFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pie",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			pie, err := client.CreatePie(cmd.Context(), req)
			if err != nil {
				return err
			}
			cmd.Printf("created pie %d\n", pie.Settings.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func piesUpdateCmd() *cobra.Command {
	var flags pieFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a pie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "pie id must be a number")
			}
			req, err := flags.request()
			if err != nil {
				return err
			}
			pie, err := client.UpdatePie(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			cmd.Printf("updated pie %d\n", pie.Settings.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func piesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "pie id must be a number")
			}
			if err := client.DeletePie(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("deleted pie %d\n", id)
			return nil
		},
	}
}
