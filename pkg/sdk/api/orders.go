package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderRequest is one of the four order shapes. Each knows the endpoint
// suffix it must be posted to; PlaceOrder dispatches on it so there is a
// single placement entry point instead of four drifting method bodies.
// The interface is sealed: only the types below satisfy it.
type OrderRequest interface {
	orderEndpoint() string
}

// MarketOrderRequest executes immediately at the current price.
type MarketOrderRequest struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (MarketOrderRequest) orderEndpoint() string { return "market" }

// LimitOrderRequest rests until the limit price is reached.
type LimitOrderRequest struct {
	Ticker       string          `json:"ticker"`
	Quantity     decimal.Decimal `json:"quantity"`
	LimitPrice   decimal.Decimal `json:"limitPrice"`
	TimeValidity TimeValidity    `json:"timeValidity"`
}

func (LimitOrderRequest) orderEndpoint() string { return "limit" }

// StopOrderRequest becomes a market order once the stop price trades.
type StopOrderRequest struct {
	Ticker       string          `json:"ticker"`
	Quantity     decimal.Decimal `json:"quantity"`
	StopPrice    decimal.Decimal `json:"stopPrice"`
	TimeValidity TimeValidity    `json:"timeValidity"`
}

func (StopOrderRequest) orderEndpoint() string { return "stop" }

// StopLimitOrderRequest becomes a limit order once the stop price trades.
type StopLimitOrderRequest struct {
	Ticker       string          `json:"ticker"`
	Quantity     decimal.Decimal `json:"quantity"`
	StopPrice    decimal.Decimal `json:"stopPrice"`
	LimitPrice   decimal.Decimal `json:"limitPrice"`
	TimeValidity TimeValidity    `json:"timeValidity"`
}

func (StopLimitOrderRequest) orderEndpoint() string { return "stop_limit" }

// Orders lists all pending orders.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.get(ctx, "/equity/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder submits any of the four order shapes to its endpoint and
// returns the accepted order with server-assigned id and status.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var out Order
	if err := c.post(ctx, "/equity/orders/"+req.orderEndpoint(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Order fetches one pending order by id.
func (c *Client) Order(ctx context.Context, id int64) (*Order, error) {
	var out Order
	if err := c.get(ctx, fmt.Sprintf("/equity/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder cancels a pending order by id.
func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	return c.rest.Remove(ctx, fmt.Sprintf("/equity/orders/%d", id))
}
