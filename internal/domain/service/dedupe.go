package service

import (
	"fmt"
	"math"

	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// odometerWarnToleranceKm is the slack allowed between a projected odometer
// and the reading already recorded for the same date before a mismatch
// warning is raised.
const odometerWarnToleranceKm = 1.0

// ResolveDuplicates partitions eligible days into new days and duplicates
// against the set of dates already present in the destination ledger.
//
// Equality is by exact date only: existing entries are never overwritten,
// whatever their odometer or quantity (at-most-once-ever per date). When an
// equal-date entry disagrees with the projected odometer, a warning is
// returned so the skip is visible, but the skip stands.
func ResolveDuplicates(days []entity.ProjectedDay, existing []entity.ExistingEntry) ([]entity.ProjectedDay, []entity.SkippedDay, []string) {
	byDate := make(map[string]entity.ExistingEntry, len(existing))
	for _, e := range existing {
		byDate[e.Date.Format(entity.DateLayout)] = e
	}

	var fresh []entity.ProjectedDay
	var dupes []entity.SkippedDay
	var warnings []string

	for _, day := range days {
		entry, found := byDate[day.Bucket.DateKey()]
		if !found {
			fresh = append(fresh, day)
			continue
		}

		dupes = append(dupes, entity.SkippedDay{Date: day.Bucket.Date, Reason: entity.SkipDuplicate})
		if math.Abs(entry.OdometerKm-day.OdometerKm) > odometerWarnToleranceKm {
			warnings = append(warnings, fmt.Sprintf(
				"existing entry for %s has odometer %.0f km but projection says %.0f km; entry left untouched",
				day.Bucket.DateKey(), entry.OdometerKm, day.OdometerKm))
		}
	}

	return fresh, dupes, warnings
}
