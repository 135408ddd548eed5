package service

import (
	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// Project annotates buckets, already sorted ascending by date, with an
// absolute ending odometer reading. The fold is iterative and strictly
// sequential: odometer[d] = odometer[d-1] + distance[d], anchored at
// startOdometerKm, the last confirmed true reading. Fractional kilometres
// are carried through unrounded.
//
// Days missing between consecutive buckets are returned as gaps. A gap
// cannot be reconstructed from distance deltas, so it is surfaced to the
// caller instead of being swallowed.
func Project(buckets []*entity.DayBucket, startOdometerKm float64) ([]entity.ProjectedDay, []entity.DateGap) {
	days := make([]entity.ProjectedDay, 0, len(buckets))
	var gaps []entity.DateGap

	odometer := startOdometerKm
	for i, bucket := range buckets {
		if i > 0 {
			prev := buckets[i-1].Date
			if next := prev.AddDate(0, 0, 1); bucket.Date.After(next) {
				gaps = append(gaps, entity.DateGap{
					From: next,
					To:   bucket.Date.AddDate(0, 0, -1),
				})
			}
		}

		odometer += bucket.DistanceKm
		days = append(days, entity.ProjectedDay{
			Bucket:     bucket,
			OdometerKm: odometer,
		})
	}

	return days, gaps
}
