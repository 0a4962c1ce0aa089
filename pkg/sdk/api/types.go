package api

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The API speaks JSON numbers for every monetary field; shopspring's
	// default of quoting decimals would be rejected on write paths.
	decimal.MarshalJSONWithoutQuotes = true
}

// TimeEvent is a single open/close event in a venue's trading calendar.
type TimeEvent struct {
	Date string `json:"date" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// WorkingSchedule is a venue's trading-session calendar.
type WorkingSchedule struct {
	ID         int         `json:"id" validate:"required"`
	TimeEvents []TimeEvent `json:"timeEvents" validate:"dive"`
}

// Exchange is a trading venue. WorkingSchedules may be absent depending on
// the endpoint.
type Exchange struct {
	ID               int               `json:"id" validate:"required"`
	Name             string            `json:"name" validate:"required"`
	WorkingSchedules []WorkingSchedule `json:"workingSchedules,omitempty" validate:"dive"`
}

// Issue is a problem flag the API attaches to a pie instrument.
type Issue struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

// InvestmentResult is the performance block shared by pies and pie
// instruments.
type InvestmentResult struct {
	InvestedValue decimal.Decimal `json:"investedValue"`
	Result        decimal.Decimal `json:"result"`
	ResultCoef    decimal.Decimal `json:"resultCoef"`
	Value         decimal.Decimal `json:"value"`
}

// Instrument is a tradable security. Only the ticker is guaranteed: the
// metadata list, the pie detail and other endpoints each return different
// subsets of the remaining fields.
type Instrument struct {
	Ticker            string            `json:"ticker" validate:"required"`
	Name              string            `json:"name,omitempty"`
	Type              string            `json:"type,omitempty"`
	ISIN              string            `json:"isin,omitempty"`
	AddedOn           string            `json:"addedOn,omitempty"`
	Shortname         string            `json:"shortName,omitempty"`
	CurrencyCode      string            `json:"currencyCode,omitempty"`
	Result            *InvestmentResult `json:"result,omitempty"`
	CurrentShare      *decimal.Decimal  `json:"currentShare,omitempty"`
	ExpectedShare     *decimal.Decimal  `json:"expectedShare,omitempty"`
	OwnedQuantity     *decimal.Decimal  `json:"ownedQuantity,omitempty"`
	Issues            []Issue           `json:"issues,omitempty"`
	WorkingScheduleID int               `json:"workingScheduleId,omitempty"`
	MaxOpenQuantity   *decimal.Decimal  `json:"maxOpenQuantity,omitempty"`
	MinTradeQuantity  *decimal.Decimal  `json:"minTradeQuantity,omitempty"`
}

// Position is an open holding. Quantities and prices are signed; FxPpl is
// absent when no currency conversion applies.
type Position struct {
	Ticker          string           `json:"ticker" validate:"required"`
	Quantity        decimal.Decimal  `json:"quantity"`
	AveragePrice    decimal.Decimal  `json:"averagePrice"`
	CurrentPrice    decimal.Decimal  `json:"currentPrice"`
	Ppl             decimal.Decimal  `json:"ppl"`
	FxPpl           *decimal.Decimal `json:"fxPpl,omitempty"`
	InitialFillDate string           `json:"initialFillDate"`
	Frontend        string           `json:"frontend"`
	MaxBuy          decimal.Decimal  `json:"maxBuy"`
	MaxSell         decimal.Decimal  `json:"maxSell"`
	PieQuantity     decimal.Decimal  `json:"pieQuantity"`
}

// DividendDetails summarizes dividends accrued by a pie.
type DividendDetails struct {
	Gained     decimal.Decimal `json:"gained"`
	InCash     decimal.Decimal `json:"inCash"`
	Reinvested decimal.Decimal `json:"reinvested"`
}

// PieSummary is the list-endpoint shape of a pie: balances and performance,
// no holdings detail.
type PieSummary struct {
	ID              int               `json:"id" validate:"required"`
	Cash            decimal.Decimal   `json:"cash"`
	DividendDetails *DividendDetails  `json:"dividendDetails,omitempty"`
	Progress        *decimal.Decimal  `json:"progress,omitempty"`
	Result          *InvestmentResult `json:"result,omitempty"`
	Status          string            `json:"status,omitempty"`
}

// PieRequest is the create/update input: target allocation and goal.
// InstrumentShares maps tickers to fractional weights that should sum to 1.
type PieRequest struct {
	Name               string                     `json:"name"`
	DividendCashAction DividendCashAction         `json:"dividendCashAction,omitempty"`
	EndDate            *time.Time                 `json:"endDate,omitempty"`
	Goal               decimal.Decimal            `json:"goal"`
	Icon               *Icon                      `json:"icon,omitempty"`
	InstrumentShares   map[string]decimal.Decimal `json:"instrumentShares"`
}

// PieSettings carries the server-assigned identity and goal settings of a
// pie.
type PieSettings struct {
	ID                 int                        `json:"id" validate:"required"`
	Name               string                     `json:"name" validate:"required"`
	CreationDate       string                     `json:"creationDate"`
	DividendCashAction DividendCashAction         `json:"dividendCashAction,omitempty"`
	EndDate            *string                    `json:"endDate,omitempty"`
	Goal               decimal.Decimal            `json:"goal"`
	Icon               *Icon                      `json:"icon,omitempty"`
	InitialInvestment  *decimal.Decimal           `json:"initialInvestment,omitempty"`
	InstrumentShares   map[string]decimal.Decimal `json:"instrumentShares,omitempty"`
	// The API really does spell it this way.
	PublicURL string `json:"pubicUrl,omitempty"`
}

// PieDetail is the create/update/fetch output: current holdings plus
// settings.
type PieDetail struct {
	Instruments []Instrument `json:"instruments" validate:"dive"`
	Settings    PieSettings  `json:"settings"`
}

// Order is a placed trade instruction as reported back by the API. Status
// and identifiers are always present; the price fields depend on the order
// type.
type Order struct {
	ID             int64            `json:"id" validate:"required"`
	Ticker         string           `json:"ticker" validate:"required"`
	Type           OrderType        `json:"type" validate:"required"`
	Status         OrderStatus      `json:"status" validate:"required"`
	CreationTime   time.Time        `json:"creationTime"`
	Quantity       decimal.Decimal  `json:"quantity"`
	FilledQuantity decimal.Decimal  `json:"filledQuantity"`
	FilledValue    decimal.Decimal  `json:"filledValue"`
	LimitPrice     *decimal.Decimal `json:"limitPrice,omitempty"`
	StopPrice      *decimal.Decimal `json:"stopPrice,omitempty"`
	TimeValidity   *TimeValidity    `json:"timeValidity,omitempty"`
	Strategy       string           `json:"strategy,omitempty"`
	Value          decimal.Decimal  `json:"value"`
}

// AccountCash is the account balance breakdown. Everything is non-negative
// except Ppl and Result.
type AccountCash struct {
	Blocked  *decimal.Decimal `json:"blocked,omitempty"`
	Free     decimal.Decimal  `json:"free"`
	Invested decimal.Decimal  `json:"invested"`
	PieCash  decimal.Decimal  `json:"pieCash"`
	Ppl      decimal.Decimal  `json:"ppl"`
	Result   decimal.Decimal  `json:"result"`
	Total    decimal.Decimal  `json:"total"`
}

// AccountMetadata identifies the account.
type AccountMetadata struct {
	CurrencyCode string `json:"currencyCode" validate:"required"`
	ID           int64  `json:"id" validate:"required"`
}

// Tax is a charge attached to a historical order fill.
type Tax struct {
	FillID      string          `json:"fillId"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	TimeCharged time.Time       `json:"timeCharged"`
}

// HistoryOrder is one record of the order history. Fill fields are absent
// for orders that never executed.
type HistoryOrder struct {
	ID              int64            `json:"id" validate:"required"`
	ParentOrder     int64            `json:"parentOrder"`
	Ticker          string           `json:"ticker" validate:"required"`
	Type            OrderType        `json:"type" validate:"required"`
	Status          OrderStatus      `json:"status" validate:"required"`
	Executor        string           `json:"executor,omitempty"`
	DateCreated     time.Time        `json:"dateCreated"`
	DateModified    time.Time        `json:"dateModified"`
	DateExecuted    *time.Time       `json:"dateExecuted,omitempty"`
	FillCost        *decimal.Decimal `json:"fillCost,omitempty"`
	FillID          *int64           `json:"fillId,omitempty"`
	FillPrice       *decimal.Decimal `json:"fillPrice,omitempty"`
	FillResult      *decimal.Decimal `json:"fillResult,omitempty"`
	FillType        string           `json:"fillType,omitempty"`
	FilledQuantity  *decimal.Decimal `json:"filledQuantity,omitempty"`
	FilledValue     *decimal.Decimal `json:"filledValue,omitempty"`
	LimitPrice      *decimal.Decimal `json:"limitPrice,omitempty"`
	StopPrice       *decimal.Decimal `json:"stopPrice,omitempty"`
	OrderedQuantity *decimal.Decimal `json:"orderedQuantity,omitempty"`
	OrderedValue    *decimal.Decimal `json:"orderedValue,omitempty"`
	TimeValidity    *TimeValidity    `json:"timeValidity,omitempty"`
	Taxes           []Tax            `json:"taxes"`
}

// HistoricalOrderData is one page of order history. Items keep the
// server's reverse-chronological order.
type HistoricalOrderData struct {
	Items []HistoryOrder `json:"items" validate:"dive"`
	// NextPagePath is an opaque cursor despite its name: pass it back
	// verbatim as the cursor query parameter. Empty means last page.
	NextPagePath string `json:"nextPagePath,omitempty"`
}

// Dividend is one paid-out dividend record.
type Dividend struct {
	Ticker              string          `json:"ticker" validate:"required"`
	Reference           string          `json:"reference" validate:"required"`
	Amount              decimal.Decimal `json:"amount"`
	AmountInEuro        decimal.Decimal `json:"amountInEuro"`
	GrossAmountPerShare decimal.Decimal `json:"grossAmountPerShare"`
	Quantity            decimal.Decimal `json:"quantity"`
	PaidOn              time.Time       `json:"paidOn"`
	Type                string          `json:"type,omitempty"`
}

// PaidOutDividends is one page of dividend history.
type PaidOutDividends struct {
	Items        []Dividend `json:"items" validate:"dive"`
	NextPagePath string     `json:"nextPagePath,omitempty"`
}

// Transaction is one cash movement on the account.
type Transaction struct {
	Reference string          `json:"reference" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	DateTime  time.Time       `json:"dateTime"`
	Type      string          `json:"type,omitempty"`
}

// TransactionList is one page of transaction history.
type TransactionList struct {
	Items        []Transaction `json:"items" validate:"dive"`
	NextPagePath string        `json:"nextPagePath,omitempty"`
}

// DataIncluded selects the record kinds of a CSV export.
type DataIncluded struct {
	IncludeDividends    bool `json:"includeDividends"`
	IncludeInterest     bool `json:"includeInterest"`
	IncludeOrders       bool `json:"includeOrders"`
	IncludeTransactions bool `json:"includeTransactions"`
}

// ExportRequest asks for a CSV export covering a time range.
type ExportRequest struct {
	DataIncluded DataIncluded `json:"dataIncluded"`
	TimeFrom     time.Time    `json:"timeFrom"`
	TimeTo       time.Time    `json:"timeTo"`
}

// Export is a CSV export job as listed by the API. DownloadLink is only
// present once the job finished.
type Export struct {
	ReportID     int64        `json:"reportId" validate:"required"`
	Status       ExportStatus `json:"status" validate:"required"`
	DataIncluded DataIncluded `json:"dataIncluded"`
	TimeFrom     time.Time    `json:"timeFrom"`
	TimeTo       time.Time    `json:"timeTo"`
	DownloadLink string       `json:"downloadLink,omitempty"`
}

// Report acknowledges a requested export.
type Report struct {
	ReportID int64 `json:"reportId" validate:"required"`
}
