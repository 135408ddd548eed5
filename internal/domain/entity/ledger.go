package entity

import "time"

// Destination ledger constants. The fuel sort is the fixed identifier for
// electricity; quantities are reported in kWh at unit price.
const (
	FuelSortElectricity = 19
	QuantityUnitKwh     = 5
	PriceTypeUnit       = 1
	FuelingTypeFull     = "full"
)

// LedgerEntry is a consumption record to be submitted to the destination
// ledger. Its odometer must be >= the odometer of the chronologically
// preceding entry.
type LedgerEntry struct {
	Date           time.Time `json:"date"`
	OdometerKm     float64   `json:"odometer_km"`
	TripKm         float64   `json:"trip_km"`
	QuantityKwh    float64   `json:"quantity_kwh"`
	FuelSortID     int       `json:"fuel_sort_id"`
	QuantityUnitID int       `json:"quantity_unit_id"`
	Price          float64   `json:"price"`
	CurrencyID     int       `json:"currency_id"`
	PriceTypeID    int       `json:"price_type_id"`
	FuelingType    string    `json:"fueling_type"`
	ChargeInfo     string    `json:"charge_info,omitempty"`
	BCConsumption  float64   `json:"bc_consumption,omitempty"`
	BCQuantityKwh  float64   `json:"bc_quantity_kwh,omitempty"`
	Note           string    `json:"note"`
}

// ExistingEntry is the slice of a ledger entry the sync needs for duplicate
// detection and odometer anchoring.
type ExistingEntry struct {
	Date       time.Time `json:"date"`
	OdometerKm float64   `json:"odometer_km"`
}

// Vehicle identifies a vehicle known to the telemetry provider. Only used
// to help the operator discover a vehicle identifier.
type Vehicle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
