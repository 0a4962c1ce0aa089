package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyPageOne = `{
	"items": [
		{"id": 3, "ticker": "AAPL_US_EQ", "type": "MARKET", "status": "FILLED",
		 "dateCreated": "2024-03-25T10:51:00.000Z", "dateModified": "2024-03-25T10:51:02.000Z",
		 "fillPrice": 171.05, "taxes": []},
		{"id": 2, "ticker": "AAPL_US_EQ", "type": "LIMIT", "status": "CANCELLED",
		 "dateCreated": "2024-03-24T09:00:00.000Z", "dateModified": "2024-03-24T15:00:00.000Z",
		 "limitPrice": 165, "timeValidity": "DAY", "taxes": []},
		{"id": 1, "ticker": "MSFT_US_EQ", "type": "MARKET", "status": "FILLED",
		 "dateCreated": "2024-03-20T11:30:00.000Z", "dateModified": "2024-03-20T11:30:01.000Z",
		 "fillPrice": 420.55, "taxes": [{"fillId": "f-1", "name": "CURRENCY_CONVERSION_FEE", "quantity": 0.12, "timeCharged": "2024-03-20T11:30:01.000Z"}]}
	],
	"nextPagePath": "abc123"
}`

const historyPageTwo = `{"items": []}`

func TestOrderHistoryCursorPassedVerbatim(t *testing.T) {
	var queries []url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(testPrefix+"/equity/history/orders", func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())
		if r.URL.Query().Get("cursor") == "abc123" {
			_, _ = w.Write([]byte(historyPageTwo))
			return
		}
		_, _ = w.Write([]byte(historyPageOne))
	})
	c := newTestClient(t, mux)

	first, err := c.OrderHistory(context.Background(), HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, first.Items, 3)
	require.Equal(t, "abc123", first.NextPagePath)

	// The token goes back exactly as received; it is never parsed or
	// treated as a URL path.
	second, err := c.OrderHistory(context.Background(), HistoryQuery{Cursor: first.NextPagePath})
	require.NoError(t, err)
	assert.Empty(t, second.Items)
	assert.Empty(t, second.NextPagePath)

	require.Len(t, queries, 2)
	assert.Equal(t, "abc123", queries[1].Get("cursor"))
}

func TestOrderHistoryOmitsAbsentParams(t *testing.T) {
	var gotRawQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(historyPageTwo))
	}))

	_, err := c.OrderHistory(context.Background(), HistoryQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotRawQuery, "absent parameters must not be sent as empty values")
}

func TestOrderHistoryAllParams(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(historyPageTwo))
	}))

	_, err := c.OrderHistory(context.Background(), HistoryQuery{
		Cursor: "c-77", Ticker: "AAPL_US_EQ", Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "c-77", gotQuery.Get("cursor"))
	assert.Equal(t, "AAPL_US_EQ", gotQuery.Get("ticker"))
	assert.Equal(t, "20", gotQuery.Get("limit"))
}

func TestOrderHistoryPaginationIdempotent(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/equity/history/orders", historyPageOne))

	first, err := c.OrderHistory(context.Background(), HistoryQuery{Cursor: "same"})
	require.NoError(t, err)
	second, err := c.OrderHistory(context.Background(), HistoryQuery{Cursor: "same"})
	require.NoError(t, err)

	assert.Equal(t, first, second, "reading a page must not mutate it")
}

func TestOrderHistoryPreservesItemOrder(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/equity/history/orders", historyPageOne))

	page, err := c.OrderHistory(context.Background(), HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	// Server order is reverse-chronological; the client keeps it.
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, int64(2), page.Items[1].ID)
	assert.Equal(t, int64(1), page.Items[2].ID)
	require.Len(t, page.Items[2].Taxes, 1)
	assert.True(t, page.Items[2].Taxes[0].Quantity.Equal(decimal.RequireFromString("0.12")))
}

func TestDividendsPage(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/history/dividends",
		`{"items": [{"ticker": "AAPL_US_EQ", "reference": "d-900", "amount": 1.55,
		             "amountInEuro": 1.43, "grossAmountPerShare": 0.24, "quantity": 6.5,
		             "paidOn": "2024-02-15T00:00:00.000Z", "type": "ORDINARY"}],
		  "nextPagePath": "div-next"}`))

	page, err := c.Dividends(context.Background(), HistoryQuery{Ticker: "AAPL_US_EQ"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "d-900", page.Items[0].Reference)
	assert.Equal(t, "div-next", page.NextPagePath)
}

func TestTransactionsPage(t *testing.T) {
	var gotQuery url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(testPrefix+"/history/transactions", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"items": [{"reference": "tx-1", "amount": -100,
			"dateTime": "2024-01-05T09:00:00.000Z", "type": "WITHDRAW"}]}`))
	})
	c := newTestClient(t, mux)

	page, err := c.Transactions(context.Background(), TransactionQuery{Limit: 5})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Amount.IsNegative())
	assert.Empty(t, page.NextPagePath)
	assert.Equal(t, "5", gotQuery.Get("limit"))
	_, present := gotQuery["cursor"]
	assert.False(t, present)
}

func TestExportsList(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/history/exports",
		`[{"reportId": 512, "status": "Finished",
		   "dataIncluded": {"includeDividends": true, "includeInterest": false, "includeOrders": true, "includeTransactions": true},
		   "timeFrom": "2024-01-01T00:00:00.000Z", "timeTo": "2024-02-01T00:00:00.000Z",
		   "downloadLink": "https://example.com/export.csv"}]`))

	exports, err := c.Exports(context.Background())
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Equal(t, ExportStatusFinished, exports[0].Status)
	assert.True(t, exports[0].DataIncluded.IncludeOrders)
}

func TestRequestExport(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/history/exports", `{"reportId": 513}`))

	report, err := c.RequestExport(context.Background(), ExportRequest{
		DataIncluded: DataIncluded{IncludeOrders: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(513), report.ReportID)
}

func TestExchangesList(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/equity/metadata/exchanges",
		`[{"id": 40, "name": "NASDAQ",
		   "workingSchedules": [{"id": 5, "timeEvents": [{"date": "2024-03-25T13:30:00.000Z", "type": "OPEN"}]}]},
		  {"id": 41, "name": "LSE"}]`))

	exchanges, err := c.Exchanges(context.Background())
	require.NoError(t, err)
	require.Len(t, exchanges, 2)
	assert.Equal(t, "NASDAQ", exchanges[0].Name)
	require.Len(t, exchanges[0].WorkingSchedules, 1)
	assert.Nil(t, exchanges[1].WorkingSchedules)
}
