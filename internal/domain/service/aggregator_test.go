package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/service"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

func trip(start time.Time, distance, consumed float64) entity.TripRecord {
	return entity.TripRecord{
		Start:       start,
		End:         start.Add(30 * time.Minute),
		DistanceKm:  distance,
		ConsumedKwh: consumed,
		Consumed:    entity.EnergyBreakdown{DrivetrainKwh: consumed},
	}
}

func TestAggregate(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)

	tests := []struct {
		name        string
		trips       []entity.TripRecord
		wantBuckets int
		check       func(t *testing.T, buckets map[string]*entity.DayBucket)
	}{
		{
			name:        "no trips produces no buckets",
			trips:       nil,
			wantBuckets: 0,
		},
		{
			name: "two trips on the same day merge into one bucket",
			trips: []entity.TripRecord{
				trip(d1, 20, 3.5),
				trip(d1.Add(4*time.Hour), 30, 4.5),
			},
			wantBuckets: 1,
			check: func(t *testing.T, buckets map[string]*entity.DayBucket) {
				b := buckets["2025-03-10"]
				require.NotNil(t, b)
				assert.InDelta(t, 50.0, b.DistanceKm, 1e-9)
				assert.InDelta(t, 8.0, b.ConsumedKwh, 1e-9)
				assert.Equal(t, 2, b.TripCount)
			},
		},
		{
			name: "trips on different days land in different buckets",
			trips: []entity.TripRecord{
				trip(d1, 20, 3.5),
				trip(d1.AddDate(0, 0, 2), 10, 2.0),
			},
			wantBuckets: 2,
		},
		{
			name: "midnight-spanning trip is attributed to its start date",
			trips: []entity.TripRecord{
				{
					Start:       time.Date(2025, 3, 10, 23, 40, 0, 0, loc),
					End:         time.Date(2025, 3, 11, 0, 20, 0, 0, loc),
					DistanceKm:  35,
					ConsumedKwh: 6,
				},
			},
			wantBuckets: 1,
			check: func(t *testing.T, buckets map[string]*entity.DayBucket) {
				assert.Contains(t, buckets, "2025-03-10")
				assert.NotContains(t, buckets, "2025-03-11")
			},
		},
		{
			name: "charging-only day still produces a bucket",
			trips: []entity.TripRecord{
				{
					Start:      d1,
					End:        d1.Add(time.Hour),
					ChargedKwh: 22.5,
					ChargeType: entity.ChargeTypeAC,
				},
			},
			wantBuckets: 1,
			check: func(t *testing.T, buckets map[string]*entity.DayBucket) {
				b := buckets["2025-03-10"]
				require.NotNil(t, b)
				assert.Zero(t, b.DistanceKm)
				assert.InDelta(t, 22.5, b.ACChargedKwh, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets, err := service.Aggregate(tt.trips, loc)
			require.NoError(t, err)
			assert.Len(t, buckets, tt.wantBuckets)
			if tt.check != nil {
				tt.check(t, buckets)
			}
		})
	}
}

func TestAggregateRejectsNegativeInput(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)

	tests := []struct {
		name string
		trip entity.TripRecord
	}{
		{"negative distance", trip(d1, -1, 2)},
		{"negative consumed energy", trip(d1, 10, -0.5)},
		{
			"negative sub-component",
			entity.TripRecord{
				Start:       d1,
				DistanceKm:  10,
				ConsumedKwh: 2,
				Consumed:    entity.EnergyBreakdown{ClimateKwh: -0.1},
			},
		},
		{
			"negative regenerated energy",
			entity.TripRecord{Start: d1, DistanceKm: 10, RegeneratedKwh: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Aggregate([]entity.TripRecord{tt.trip}, loc)
			require.Error(t, err)
			var verr *types.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAggregateConservesDistance(t *testing.T) {
	loc := time.UTC
	base := time.Date(2025, 3, 1, 6, 0, 0, 0, loc)

	var trips []entity.TripRecord
	var wantTotal float64
	for i := 0; i < 40; i++ {
		d := float64(i%7) * 3.25
		trips = append(trips, trip(base.Add(time.Duration(i*9)*time.Hour), d, d/5))
		wantTotal += d
	}

	buckets, err := service.Aggregate(trips, loc)
	require.NoError(t, err)

	var gotTotal float64
	for _, b := range buckets {
		gotTotal += b.DistanceKm
	}
	assert.InDelta(t, wantTotal, gotTotal, 1e-9)
}

func TestSortedByDate(t *testing.T) {
	loc := time.UTC
	buckets, err := service.Aggregate([]entity.TripRecord{
		trip(time.Date(2025, 3, 12, 9, 0, 0, 0, loc), 10, 2),
		trip(time.Date(2025, 3, 10, 9, 0, 0, 0, loc), 20, 4),
		trip(time.Date(2025, 3, 11, 9, 0, 0, 0, loc), 30, 6),
	}, loc)
	require.NoError(t, err)

	sorted := service.SortedByDate(buckets)
	require.Len(t, sorted, 3)
	assert.Equal(t, "2025-03-10", sorted[0].DateKey())
	assert.Equal(t, "2025-03-11", sorted[1].DateKey())
	assert.Equal(t, "2025-03-12", sorted[2].DateKey())
}
