package api

import (
	"encoding/json"

	"github.com/equitybot/t212go/pkg/sdk/rest"
)

// The string enums below are closed sets: decoding a value outside the set
// fails with a *rest.SchemaError naming the field, so a new server-side
// state surfaces as an explicit error instead of flowing through as an
// arbitrary string.

func enumSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func decodeEnum(data []byte, field string, allowed map[string]struct{}) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", &rest.SchemaError{Field: field, Reason: "expected a string", Cause: err}
	}
	if _, ok := allowed[s]; !ok {
		return "", &rest.SchemaError{Field: field, Reason: "unknown value " + s}
	}
	return s, nil
}

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeStop      OrderType = "STOP"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

var orderTypeValues = enumSet("LIMIT", "MARKET", "STOP", "STOP_LIMIT")

func (t *OrderType) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "type", orderTypeValues)
	if err != nil {
		return err
	}
	*t = OrderType(s)
	return nil
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusLocal           OrderStatus = "LOCAL"
	OrderStatusUnconfirmed     OrderStatus = "UNCONFIRMED"
	OrderStatusConfirmed       OrderStatus = "CONFIRMED"
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusCancelling      OrderStatus = "CANCELLING"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusReplacing       OrderStatus = "REPLACING"
	OrderStatusReplaced        OrderStatus = "REPLACED"
)

var orderStatusValues = enumSet(
	"LOCAL", "UNCONFIRMED", "CONFIRMED", "NEW", "CANCELLING", "CANCELLED",
	"PARTIALLY_FILLED", "FILLED", "REJECTED", "REPLACING", "REPLACED",
)

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "status", orderStatusValues)
	if err != nil {
		return err
	}
	*s = OrderStatus(v)
	return nil
}

// TimeValidity controls how long a resting order stays active.
type TimeValidity string

const (
	TimeValidityDay TimeValidity = "DAY"
	TimeValidityGTC TimeValidity = "GTC"
)

var timeValidityValues = enumSet("DAY", "GTC")

func (t *TimeValidity) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "timeValidity", timeValidityValues)
	if err != nil {
		return err
	}
	*t = TimeValidity(s)
	return nil
}

// DividendCashAction is what a pie does with incoming dividends.
type DividendCashAction string

const (
	DividendCashActionReinvest      DividendCashAction = "REINVEST"
	DividendCashActionToAccountCash DividendCashAction = "TO_ACCOUNT_CASH"
)

var dividendCashActionValues = enumSet("REINVEST", "TO_ACCOUNT_CASH")

func (d *DividendCashAction) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "dividendCashAction", dividendCashActionValues)
	if err != nil {
		return err
	}
	*d = DividendCashAction(s)
	return nil
}

// ExportStatus is the state of a CSV export job. Unlike the other enums the
// server spells these in title case.
type ExportStatus string

const (
	ExportStatusQueued     ExportStatus = "Queued"
	ExportStatusProcessing ExportStatus = "Processing"
	ExportStatusRunning    ExportStatus = "Running"
	ExportStatusCanceled   ExportStatus = "Canceled"
	ExportStatusFailed     ExportStatus = "Failed"
	ExportStatusFinished   ExportStatus = "Finished"
)

var exportStatusValues = enumSet(
	"Queued", "Processing", "Running", "Canceled", "Failed", "Finished",
)

func (s *ExportStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "status", exportStatusValues)
	if err != nil {
		return err
	}
	*s = ExportStatus(v)
	return nil
}

// Icon is a pie's display icon. The set, including the Appartments and
// StoreFront spellings, is exactly what the API accepts.
type Icon string

const (
	IconHome          Icon = "Home"
	IconPiggyBank     Icon = "PiggyBank"
	IconIceberg       Icon = "Iceberg"
	IconAirplane      Icon = "Airplane"
	IconRV            Icon = "RV"
	IconUnicorn       Icon = "Unicorn"
	IconWhale         Icon = "Whale"
	IconConvertable   Icon = "Convertable"
	IconFamily        Icon = "Family"
	IconCoins         Icon = "Coins"
	IconEducation     Icon = "Education"
	IconBillsAndCoins Icon = "BillsAndCoins"
	IconBills         Icon = "Bills"
	IconWater         Icon = "Water"
	IconWind          Icon = "Wind"
	IconCar           Icon = "Car"
	IconBriefcase     Icon = "Briefcase"
	IconMedical       Icon = "Medical"
	IconLandscape     Icon = "Landscape"
	IconChild         Icon = "Child"
	IconVault         Icon = "Vault"
	IconTravel        Icon = "Travel"
	IconCabin         Icon = "Cabin"
	IconAppartments   Icon = "Appartments"
	IconBurger        Icon = "Burger"
	IconBus           Icon = "Bus"
	IconEnergy        Icon = "Energy"
	IconFactory       Icon = "Factory"
	IconGlobal        Icon = "Global"
	IconLeaf          Icon = "Leaf"
	IconMaterials     Icon = "Materials"
	IconPill          Icon = "Pill"
	IconRing          Icon = "Ring"
	IconShipping      Icon = "Shipping"
	IconStoreFront    Icon = "StoreFront"
	IconTech          Icon = "Tech"
	IconUmbrella      Icon = "Umbrella"
)

var iconValues = enumSet(
	"Home", "PiggyBank", "Iceberg", "Airplane", "RV", "Unicorn", "Whale",
	"Convertable", "Family", "Coins", "Education", "BillsAndCoins", "Bills",
	"Water", "Wind", "Car", "Briefcase", "Medical", "Landscape", "Child",
	"Vault", "Travel", "Cabin", "Appartments", "Burger", "Bus", "Energy",
	"Factory", "Global", "Leaf", "Materials", "Pill", "Ring", "Shipping",
	"StoreFront", "Tech", "Umbrella",
)

func (i *Icon) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data, "icon", iconValues)
	if err != nil {
		return err
	}
	*i = Icon(s)
	return nil
}
