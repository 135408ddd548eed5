package service

import (
	"fmt"
	"strings"

	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// Pricing carries the configured unit price applied to every entry.
type Pricing struct {
	PricePerKwh float64
	CurrencyID  int
}

// BuildEntry renders a projected day into a ledger entry ready for
// submission. Quantity is the day's total consumed energy; regeneration is
// never netted into it and is reported in the note instead, matching
// metering semantics where only drawn energy is billed.
func BuildEntry(day entity.ProjectedDay, pricing Pricing) entity.LedgerEntry {
	b := day.Bucket

	entry := entity.LedgerEntry{
		Date:           b.Date,
		OdometerKm:     day.OdometerKm,
		TripKm:         b.DistanceKm,
		QuantityKwh:    b.ConsumedKwh,
		FuelSortID:     entity.FuelSortElectricity,
		QuantityUnitID: entity.QuantityUnitKwh,
		Price:          pricing.PricePerKwh,
		CurrencyID:     pricing.CurrencyID,
		PriceTypeID:    entity.PriceTypeUnit,
		FuelingType:    entity.FuelingTypeFull,
		ChargeInfo:     chargeInfo(b),
		BCQuantityKwh:  b.ConsumedKwh,
		Note:           buildNote(b),
	}

	if b.ConsumedKwh > 0 {
		entry.BCConsumption = b.DistanceKm / b.ConsumedKwh
	}

	return entry
}

// buildNote renders the energy breakdown in a fixed field order with one
// decimal place, so the output is reproducible.
func buildNote(b *entity.DayBucket) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "drivetrain: %.1f kWh\n", b.Consumed.DrivetrainKwh)
	fmt.Fprintf(&sb, "climate: %.1f kWh\n", b.Consumed.ClimateKwh)
	fmt.Fprintf(&sb, "electronics: %.1f kWh\n", b.Consumed.ElectronicsKwh)
	fmt.Fprintf(&sb, "battery care: %.1f kWh\n", b.Consumed.BatteryCareKwh)
	fmt.Fprintf(&sb, "regenerated: %.1f kWh\n", b.RegeneratedKwh)
	fmt.Fprintf(&sb, "net consumption: %.1f kWh", b.ConsumedKwh-b.RegeneratedKwh)

	if b.ACChargedKwh > 0 {
		fmt.Fprintf(&sb, "\nAC charged: %.1f kWh", b.ACChargedKwh)
	}
	if b.DCChargedKwh > 0 {
		fmt.Fprintf(&sb, "\nDC charged: %.1f kWh", b.DCChargedKwh)
	}
	fmt.Fprintf(&sb, "\ntrips: %d", b.TripCount)

	return sb.String()
}

func chargeInfo(b *entity.DayBucket) string {
	switch {
	case b.DCChargedKwh > 0:
		return "dc,source_vehicle"
	case b.ACChargedKwh > 0:
		return "ac,source_vehicle"
	default:
		return ""
	}
}
