package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitybot/t212go/pkg/sdk/rest"
)

const pieDetailResponse = `{
	"instruments": [
		{"ticker": "AAPL_US_EQ", "expectedShare": 0.6, "currentShare": 0.58, "ownedQuantity": 1.2},
		{"ticker": "MSFT_US_EQ", "expectedShare": 0.4, "currentShare": 0.42, "ownedQuantity": 0.8}
	],
	"settings": {
		"id": 1842,
		"name": "Retirement",
		"creationDate": "2024-01-10",
		"dividendCashAction": "REINVEST",
		"goal": 10000,
		"icon": "PiggyBank",
		"instrumentShares": {"AAPL_US_EQ": 0.6, "MSFT_US_EQ": 0.4},
		"pubicUrl": "https://www.trading212.com/pies/abc"
	}
}`

func TestCreatePieRoundTrip(t *testing.T) {
	var gotBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc(testPrefix+"/equity/pies", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(pieDetailResponse))
	})
	mux.HandleFunc(testPrefix+"/equity/pies/1842", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pieDetailResponse))
	})
	c := newTestClient(t, mux)

	icon := IconPiggyBank
	created, err := c.CreatePie(context.Background(), PieRequest{
		Name:               "Retirement",
		DividendCashAction: DividendCashActionReinvest,
		Goal:               decimal.NewFromInt(10000),
		Icon:               &icon,
		InstrumentShares: map[string]decimal.Decimal{
			"AAPL_US_EQ": decimal.RequireFromString("0.6"),
			"MSFT_US_EQ": decimal.RequireFromString("0.4"),
		},
	})
	require.NoError(t, err)

	// Goal and weights travel as JSON numbers.
	assert.Equal(t, float64(10000), gotBody["goal"])
	shares, ok := gotBody["instrumentShares"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.6, shares["AAPL_US_EQ"])

	// The server-assigned id survives the round trip.
	require.Equal(t, 1842, created.Settings.ID)

	// Re-fetching the same id returns the same settings.
	fetched, err := c.Pie(context.Background(), created.Settings.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Settings, fetched.Settings)
}

func TestFetchPieNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "pie not found"}`))
	}))

	_, err := c.Pie(context.Background(), 999)

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "pie not found", apiErr.Message)
}

func TestPiesList(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/equity/pies",
		`[{"id": 1842, "cash": 12.5, "progress": 0.31, "status": "AHEAD",
		   "result": {"investedValue": 3000, "result": 150.4, "resultCoef": 0.05, "value": 3150.4},
		   "dividendDetails": {"gained": 12.1, "inCash": 2.0, "reinvested": 10.1}}]`))

	pies, err := c.Pies(context.Background())
	require.NoError(t, err)
	require.Len(t, pies, 1)
	assert.Equal(t, 1842, pies[0].ID)
	require.NotNil(t, pies[0].Result)
	assert.True(t, pies[0].Result.Value.Equal(decimal.RequireFromString("3150.4")))
}

func TestPiesEmptyList(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/equity/pies", `[]`))

	pies, err := c.Pies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pies)
}

func TestUpdatePie(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(pieDetailResponse))
	}))

	_, err := c.UpdatePie(context.Background(), 1842, PieRequest{Name: "Retirement"})
	require.NoError(t, err)
	assert.Equal(t, testPrefix+"/equity/pies/1842", gotPath)
}

func TestDeletePie(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.DeletePie(context.Background(), 1842))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, testPrefix+"/equity/pies/1842", gotPath)
}

func TestPieDetailInstrumentMissingTickerFails(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/equity/pies/7",
		`{"instruments": [{"expectedShare": 1.0}],
		  "settings": {"id": 7, "name": "Broken", "goal": 100}}`))

	_, err := c.Pie(context.Background(), 7)

	var schemaErr *rest.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "ticker", schemaErr.Field)
}
