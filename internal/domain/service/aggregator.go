package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

// Aggregate groups raw trip records into calendar-day buckets in the given
// location. A trip spanning midnight is attributed entirely to its start
// date. Trips with negative distance or any negative energy component fail
// the whole aggregation; callers must not silently clamp.
func Aggregate(trips []entity.TripRecord, loc *time.Location) (map[string]*entity.DayBucket, error) {
	buckets := make(map[string]*entity.DayBucket)

	for i, trip := range trips {
		if err := validateTrip(trip); err != nil {
			return nil, fmt.Errorf("trip %d (%s): %w", i, trip.Start.Format(time.RFC3339), err)
		}

		day := trip.Start.In(loc)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		key := date.Format(entity.DateLayout)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &entity.DayBucket{Date: date}
			buckets[key] = bucket
		}

		bucket.DistanceKm += trip.DistanceKm
		bucket.ConsumedKwh += trip.ConsumedKwh
		bucket.Consumed.Add(trip.Consumed)
		bucket.RegeneratedKwh += trip.RegeneratedKwh
		switch trip.ChargeType {
		case entity.ChargeTypeAC:
			bucket.ACChargedKwh += trip.ChargedKwh
		case entity.ChargeTypeDC:
			bucket.DCChargedKwh += trip.ChargedKwh
		}
		bucket.TripCount++
	}

	return buckets, nil
}

// SortedByDate returns the buckets in ascending date order.
func SortedByDate(buckets map[string]*entity.DayBucket) []*entity.DayBucket {
	sorted := make([]*entity.DayBucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func validateTrip(trip entity.TripRecord) error {
	if trip.DistanceKm < 0 {
		return &types.ValidationError{Msg: fmt.Sprintf("negative distance %.3f km", trip.DistanceKm)}
	}
	if trip.ConsumedKwh < 0 {
		return &types.ValidationError{Msg: fmt.Sprintf("negative consumed energy %.3f kWh", trip.ConsumedKwh)}
	}
	if trip.RegeneratedKwh < 0 {
		return &types.ValidationError{Msg: fmt.Sprintf("negative regenerated energy %.3f kWh", trip.RegeneratedKwh)}
	}
	if trip.ChargedKwh < 0 {
		return &types.ValidationError{Msg: fmt.Sprintf("negative charged energy %.3f kWh", trip.ChargedKwh)}
	}
	c := trip.Consumed
	if c.DrivetrainKwh < 0 || c.ClimateKwh < 0 || c.ElectronicsKwh < 0 || c.BatteryCareKwh < 0 {
		return &types.ValidationError{Msg: "negative energy sub-component"}
	}
	return nil
}
