package api

import (
	"context"
	"fmt"
)

// Pies lists all pies of the account in summary form.
func (c *Client) Pies(ctx context.Context) ([]PieSummary, error) {
	var out []PieSummary
	if err := c.get(ctx, "/equity/pies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePie creates a pie and returns its detail, including the
// server-assigned id in Settings.
func (c *Client) CreatePie(ctx context.Context, req PieRequest) (*PieDetail, error) {
	var out PieDetail
	if err := c.post(ctx, "/equity/pies", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pie fetches one pie with holdings and settings.
func (c *Client) Pie(ctx context.Context, id int) (*PieDetail, error) {
	var out PieDetail
	if err := c.get(ctx, fmt.Sprintf("/equity/pies/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePie replaces a pie's settings and allocation.
func (c *Client) UpdatePie(ctx context.Context, id int, req PieRequest) (*PieDetail, error) {
	var out PieDetail
	if err := c.post(ctx, fmt.Sprintf("/equity/pies/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePie deletes a pie. Holdings move back to the general portfolio on
// the server side.
func (c *Client) DeletePie(ctx context.Context, id int) error {
	return c.rest.Remove(ctx, fmt.Sprintf("/equity/pies/%d", id))
}
