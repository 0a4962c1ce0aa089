package main

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/equitybot/t212go/pkg/sdk/api"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List, inspect, place and cancel orders",
	}
	cmd.AddCommand(ordersListCmd(), ordersGetCmd(), ordersPlaceCmd(), ordersCancelCmd())
	return cmd
}

func renderOrders(orders []api.Order) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Ticker", "Type", "Status", "Quantity", "Limit", "Stop", "Created"})
	for _, o := range orders {
		table.Append([]string{
			strconv.FormatInt(o.ID, 10), o.Ticker, string(o.Type), string(o.Status),
			fmtDec(o.Quantity), fmtDecPtr(o.LimitPrice), fmtDecPtr(o.StopPrice),
			o.CreationTime.Format(time.RFC3339),
		})
	}
	table.Render()
}

func ordersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := client.Orders(cmd.Context())
			if err != nil {
				return err
			}
			renderOrders(orders)
			return nil
		},
	}
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "order id must be a number")
			}
			order, err := client.Order(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderOrders([]api.Order{*order})
			return nil
		},
	}
}

func ordersPlaceCmd() *cobra.Command {
	var (
		ticker     string
		quantity   string
		limitPrice string
		stopPrice  string
		validity   string
	)
	cmd := &cobra.Command{
		Use:       "place {market|limit|stop|stop-limit}",
		Short:     "Place an order of the given kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"market", "limit", "stop", "stop-limit"},
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := decimal.NewFromString(quantity)
			if err != nil {
				return errors.Wrap(err, "parsing --quantity")
			}
			tv := api.TimeValidity(validity)

			parsePrice := func(flag, raw string) (decimal.Decimal, error) {
				if raw == "" {
					return decimal.Decimal{}, errors.Errorf("--%s is required for this order kind", flag)
				}
				d, err := decimal.NewFromString(raw)
				return d, errors.Wrapf(err, "parsing --%s", flag)
			}

			var req api.OrderRequest
			switch args[0] {
			case "market":
				req = api.MarketOrderRequest{Ticker: ticker, Quantity: qty}
			case "limit":
				limit, err := parsePrice("limit-price", limitPrice)
				if err != nil {
					return err
				}
				req = api.LimitOrderRequest{Ticker: ticker, Quantity: qty, LimitPrice: limit, TimeValidity: tv}
			case "stop":
				stop, err := parsePrice("stop-price", stopPrice)
				if err != nil {
					return err
				}
				req = api.StopOrderRequest{Ticker: ticker, Quantity: qty, StopPrice: stop, TimeValidity: tv}
			case "stop-limit":
				stop, err := parsePrice("stop-price", stopPrice)
				if err != nil {
					return err
				}
				limit, err := parsePrice("limit-price", limitPrice)
				if err != nil {
					return err
				}
				req = api.StopLimitOrderRequest{Ticker: ticker, Quantity: qty, StopPrice: stop, LimitPrice: limit, TimeValidity: tv}
			default:
				return errors.Errorf("unknown order kind %q", args[0])
			}

			order, err := client.PlaceOrder(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderOrders([]api.Order{*order})
			return nil
		},
	}
	cmd.Flags().StringVar(&ticker, "ticker", "", "instrument ticker")
	cmd.Flags().StringVar(&quantity, "quantity", "", "quantity, negative to sell")
	cmd.Flags().StringVar(&limitPrice, "limit-price", "", "limit price")
	cmd.Flags().StringVar(&stopPrice, "stop-price", "", "stop price")
	cmd.Flags().StringVar(&validity, "validity", "DAY", "DAY or GTC")
	_ = cmd.MarkFlagRequired("ticker")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func ordersCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "order id must be a number")
			}
			if err := client.CancelOrder(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("cancelled order %d\n", id)
			return nil
		},
	}
}
