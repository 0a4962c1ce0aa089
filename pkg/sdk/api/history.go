package api

import (
	"context"
	"net/url"
	"strconv"
)

// HistoryQuery narrows a paginated history request. Zero values are left
// out of the query string entirely, never sent empty. Cursor is the opaque
// NextPagePath token of the previous page, passed back verbatim.
type HistoryQuery struct {
	Cursor string
	Ticker string
	Limit  int
}

func (q HistoryQuery) values() url.Values {
	v := url.Values{}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	}
	if q.Ticker != "" {
		v.Set("ticker", q.Ticker)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// TransactionQuery narrows a transaction history request; the endpoint has
// no ticker filter.
type TransactionQuery struct {
	Cursor string
	Limit  int
}

func (q TransactionQuery) values() url.Values {
	v := url.Values{}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// OrderHistory fetches one page of historical orders. The client never
// follows pagination on its own: loop with q.Cursor = page.NextPagePath
// until it comes back empty.
func (c *Client) OrderHistory(ctx context.Context, q HistoryQuery) (*HistoricalOrderData, error) {
	var out HistoricalOrderData
	if err := c.get(ctx, "/equity/history/orders", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dividends fetches one page of paid-out dividends.
func (c *Client) Dividends(ctx context.Context, q HistoryQuery) (*PaidOutDividends, error) {
	var out PaidOutDividends
	if err := c.get(ctx, "/history/dividends", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions fetches one page of account transactions.
func (c *Client) Transactions(ctx context.Context, q TransactionQuery) (*TransactionList, error) {
	var out TransactionList
	if err := c.get(ctx, "/history/transactions", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Exports lists requested CSV export jobs and their states.
func (c *Client) Exports(ctx context.Context) ([]Export, error) {
	var out []Export
	if err := c.get(ctx, "/history/exports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestExport queues a CSV export job; poll Exports for its status and
// download link.
func (c *Client) RequestExport(ctx context.Context, req ExportRequest) (*Report, error) {
	var out Report
	if err := c.post(ctx, "/history/exports", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
