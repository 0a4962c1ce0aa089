package api

import (
	"context"
)

// AccountCash fetches the account balance breakdown.
func (c *Client) AccountCash(ctx context.Context) (*AccountCash, error) {
	var out AccountCash
	if err := c.get(ctx, "/equity/account/cash", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountMetadata fetches the account id and base currency.
func (c *Client) AccountMetadata(ctx context.Context) (*AccountMetadata, error) {
	var out AccountMetadata
	if err := c.get(ctx, "/equity/account/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
