package entity

import "time"

// DateLayout is the canonical key format for calendar days.
const DateLayout = "2006-01-02"

// DayBucket aggregates all trips of one calendar day in the telemetry
// provider's local time zone. A bucket is only ever constructed for a date
// with at least one trip; its totals equal the sum of its constituent trips.
type DayBucket struct {
	Date           time.Time       `json:"date"`
	DistanceKm     float64         `json:"distance_km"`
	ConsumedKwh    float64         `json:"consumed_kwh"`
	Consumed       EnergyBreakdown `json:"consumed"`
	RegeneratedKwh float64         `json:"regenerated_kwh"`
	ACChargedKwh   float64         `json:"ac_charged_kwh"`
	DCChargedKwh   float64         `json:"dc_charged_kwh"`
	TripCount      int             `json:"trip_count"`
}

// DateKey returns the bucket's canonical date key.
func (b *DayBucket) DateKey() string {
	return b.Date.Format(DateLayout)
}

// ProjectedDay is a DayBucket annotated with its absolute ending odometer
// reading. Once projected the value is never revised within a run.
type ProjectedDay struct {
	Bucket     *DayBucket `json:"bucket"`
	OdometerKm float64    `json:"odometer_km"`
}

// DateGap marks a range of calendar days inside the fetch window for which
// no trips were recorded between two buckets. Gaps under-count distance and
// must be surfaced, not swallowed.
type DateGap struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
