package service

import (
	"time"

	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// Classify partitions projected days into those eligible for submission and
// those skipped with a reason. The classifier is pure and never consults
// the destination ledger.
//
// Rules, in order: a day equal to today (provider local time) is always
// incomplete; a day with zero distance and zero energy in either direction
// was never meaningfully closed; everything else in the window is complete.
func Classify(days []entity.ProjectedDay, today time.Time) ([]entity.ProjectedDay, []entity.SkippedDay) {
	todayKey := today.Format(entity.DateLayout)

	var eligible []entity.ProjectedDay
	var skipped []entity.SkippedDay

	for _, day := range days {
		switch {
		case day.Bucket.DateKey() == todayKey:
			skipped = append(skipped, entity.SkippedDay{Date: day.Bucket.Date, Reason: entity.SkipToday})
		case isEmpty(day.Bucket):
			skipped = append(skipped, entity.SkippedDay{Date: day.Bucket.Date, Reason: entity.SkipEmpty})
		default:
			eligible = append(eligible, day)
		}
	}

	return eligible, skipped
}

func isEmpty(b *entity.DayBucket) bool {
	return b.DistanceKm == 0 && b.ConsumedKwh == 0 && b.RegeneratedKwh == 0
}
