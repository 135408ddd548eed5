package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/service"
)

func TestClassify(t *testing.T) {
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	projected := func(b *entity.DayBucket) entity.ProjectedDay {
		return entity.ProjectedDay{Bucket: b, OdometerKm: 1000}
	}

	t.Run("today is always incomplete regardless of content", func(t *testing.T) {
		eligible, skipped := service.Classify([]entity.ProjectedDay{
			projected(&entity.DayBucket{Date: today, DistanceKm: 80, ConsumedKwh: 14, TripCount: 3}),
		}, today)

		assert.Empty(t, eligible)
		require.Len(t, skipped, 1)
		assert.Equal(t, entity.SkipToday, skipped[0].Reason)
	})

	t.Run("charging-only day with no energy flow is empty", func(t *testing.T) {
		eligible, skipped := service.Classify([]entity.ProjectedDay{
			projected(&entity.DayBucket{Date: yesterday, ACChargedKwh: 11, TripCount: 1}),
		}, today)

		assert.Empty(t, eligible)
		require.Len(t, skipped, 1)
		assert.Equal(t, entity.SkipEmpty, skipped[0].Reason)
	})

	t.Run("regeneration alone keeps a day closed but not empty", func(t *testing.T) {
		eligible, skipped := service.Classify([]entity.ProjectedDay{
			projected(&entity.DayBucket{Date: yesterday, RegeneratedKwh: 0.4, TripCount: 1}),
		}, today)

		assert.Len(t, eligible, 1)
		assert.Empty(t, skipped)
	})

	t.Run("past days with activity are eligible", func(t *testing.T) {
		eligible, skipped := service.Classify([]entity.ProjectedDay{
			projected(&entity.DayBucket{Date: yesterday, DistanceKm: 50, ConsumedKwh: 9.7, TripCount: 1}),
			projected(&entity.DayBucket{Date: today.AddDate(0, 0, -2), DistanceKm: 12, ConsumedKwh: 2.1, TripCount: 1}),
		}, today)

		assert.Len(t, eligible, 2)
		assert.Empty(t, skipped)
	})
}
