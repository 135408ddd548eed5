package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/service"
)

func TestBuildEntry(t *testing.T) {
	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	pricing := service.Pricing{PricePerKwh: 41, CurrencyID: 11}

	day := entity.ProjectedDay{
		Bucket: &entity.DayBucket{
			Date:        d1,
			DistanceKm:  50,
			ConsumedKwh: 9.7,
			Consumed: entity.EnergyBreakdown{
				DrivetrainKwh:  8,
				ClimateKwh:     1,
				ElectronicsKwh: 0.5,
				BatteryCareKwh: 0.2,
			},
			RegeneratedKwh: 1.2,
			ACChargedKwh:   12.5,
			TripCount:      1,
		},
		OdometerKm: 10050,
	}

	entry := service.BuildEntry(day, pricing)

	assert.Equal(t, d1, entry.Date)
	assert.InDelta(t, 10050.0, entry.OdometerKm, 1e-9)
	assert.InDelta(t, 50.0, entry.TripKm, 1e-9)
	assert.InDelta(t, 9.7, entry.QuantityKwh, 1e-9)
	assert.Equal(t, entity.FuelSortElectricity, entry.FuelSortID)
	assert.Equal(t, entity.QuantityUnitKwh, entry.QuantityUnitID)
	assert.Equal(t, entity.PriceTypeUnit, entry.PriceTypeID)
	assert.Equal(t, entity.FuelingTypeFull, entry.FuelingType)
	assert.InDelta(t, 41.0, entry.Price, 1e-9)
	assert.Equal(t, 11, entry.CurrencyID)
	assert.Equal(t, "ac,source_vehicle", entry.ChargeInfo)
	assert.InDelta(t, 50.0/9.7, entry.BCConsumption, 1e-9)

	assert.Contains(t, entry.Note, "drivetrain: 8.0")
	assert.Contains(t, entry.Note, "climate: 1.0")
	assert.Contains(t, entry.Note, "electronics: 0.5")
	assert.Contains(t, entry.Note, "battery care: 0.2")
	assert.Contains(t, entry.Note, "regenerated: 1.2")
	assert.Contains(t, entry.Note, "net consumption: 8.5")
	assert.Contains(t, entry.Note, "AC charged: 12.5")
	assert.NotContains(t, entry.Note, "DC charged")
}

func TestBuildEntryIsDeterministic(t *testing.T) {
	day := entity.ProjectedDay{
		Bucket: &entity.DayBucket{
			Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			DistanceKm:  12.3,
			ConsumedKwh: 2.4,
			Consumed:    entity.EnergyBreakdown{DrivetrainKwh: 2.0, ClimateKwh: 0.4},
			TripCount:   2,
		},
		OdometerKm: 777,
	}
	pricing := service.Pricing{PricePerKwh: 0.3, CurrencyID: 1}

	first := service.BuildEntry(day, pricing)
	second := service.BuildEntry(day, pricing)
	assert.Equal(t, first, second)
}

func TestBuildEntryZeroConsumption(t *testing.T) {
	day := entity.ProjectedDay{
		Bucket: &entity.DayBucket{
			Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			DistanceKm:     3,
			RegeneratedKwh: 0.5,
			TripCount:      1,
		},
		OdometerKm: 100,
	}

	entry := service.BuildEntry(day, service.Pricing{PricePerKwh: 1, CurrencyID: 1})
	assert.Zero(t, entry.BCConsumption)
	assert.Zero(t, entry.QuantityKwh)
	assert.Empty(t, entry.ChargeInfo)
}
