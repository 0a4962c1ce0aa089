package api

import (
	"context"
	"net/url"
)

// Portfolio lists all open positions.
func (c *Client) Portfolio(ctx context.Context) ([]Position, error) {
	var out []Position
	if err := c.get(ctx, "/equity/portfolio", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Position fetches the open position for one ticker.
func (c *Client) Position(ctx context.Context, ticker string) (*Position, error) {
	var out Position
	if err := c.get(ctx, "/equity/portfolio/"+url.PathEscape(ticker), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
