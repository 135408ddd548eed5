package entity

import "time"

// ChargeType identifies how a trip's battery was charged, if at all.
type ChargeType string

const (
	ChargeTypeNone ChargeType = "none"
	ChargeTypeAC   ChargeType = "ac"
	ChargeTypeDC   ChargeType = "dc"
)

// EnergyBreakdown splits consumed energy into the vehicle's sub-systems.
// All values are kWh.
type EnergyBreakdown struct {
	DrivetrainKwh  float64 `json:"drivetrain_kwh"`
	ClimateKwh     float64 `json:"climate_kwh"`
	ElectronicsKwh float64 `json:"electronics_kwh"`
	BatteryCareKwh float64 `json:"battery_care_kwh"`
}

// Total returns the sum of the sub-system components.
func (b EnergyBreakdown) Total() float64 {
	return b.DrivetrainKwh + b.ClimateKwh + b.ElectronicsKwh + b.BatteryCareKwh
}

// Add accumulates another breakdown into this one.
func (b *EnergyBreakdown) Add(other EnergyBreakdown) {
	b.DrivetrainKwh += other.DrivetrainKwh
	b.ClimateKwh += other.ClimateKwh
	b.ElectronicsKwh += other.ElectronicsKwh
	b.BatteryCareKwh += other.BatteryCareKwh
}

// TripRecord is a single trip as reported by the telemetry provider.
// Records are immutable: fetched once per run and discarded after
// aggregation.
type TripRecord struct {
	Start          time.Time       `json:"start"`
	End            time.Time       `json:"end"`
	DistanceKm     float64         `json:"distance_km"`
	ConsumedKwh    float64         `json:"consumed_kwh"`
	Consumed       EnergyBreakdown `json:"consumed"`
	RegeneratedKwh float64         `json:"regenerated_kwh"`
	ChargedKwh     float64         `json:"charged_kwh"`
	ChargeType     ChargeType      `json:"charge_type"`
}
