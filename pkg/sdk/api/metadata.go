package api

import (
	"context"
)

// Exchanges lists the trading venues the account has access to, with their
// working schedules.
func (c *Client) Exchanges(ctx context.Context) ([]Exchange, error) {
	var out []Exchange
	if err := c.get(ctx, "/equity/metadata/exchanges", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Instruments lists every tradable instrument the account has access to.
// The response is large; callers that only need a few tickers should cache
// it themselves.
func (c *Client) Instruments(ctx context.Context) ([]Instrument, error) {
	var out []Instrument
	if err := c.get(ctx, "/equity/metadata/instruments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
