package entity

import "time"

// SkipReason explains why a day bucket was not submitted.
type SkipReason string

const (
	SkipToday     SkipReason = "TODAY"
	SkipEmpty     SkipReason = "EMPTY"
	SkipDuplicate SkipReason = "DUPLICATE"
)

// SkippedDay records one excluded day and the rule that excluded it.
type SkippedDay struct {
	Date   time.Time  `json:"date"`
	Reason SkipReason `json:"reason"`
}

// DayStatus is the per-day outcome of a sync run.
type DayStatus string

const (
	DayStatusSubmitted DayStatus = "submitted"
	DayStatusSkipped   DayStatus = "skipped"
	DayStatusFailed    DayStatus = "failed"
)

// DayOutcome is one row of the run's day log, suitable for display and
// report export.
type DayOutcome struct {
	Date        time.Time  `json:"date"`
	Status      DayStatus  `json:"status"`
	Reason      SkipReason `json:"reason,omitempty"`
	DistanceKm  float64    `json:"distance_km"`
	OdometerKm  float64    `json:"odometer_km,omitempty"`
	QuantityKwh float64    `json:"quantity_kwh"`
	Error       string     `json:"error,omitempty"`
}

// SyncResult summarises one reconciliation run. Partial is set when the run
// stopped before completing all stages, for example on call-budget
// exhaustion; that is a reportable outcome, not an error.
type SyncResult struct {
	DaysConsidered    int          `json:"days_considered"`
	SkippedIncomplete int          `json:"skipped_incomplete"`
	SkippedDuplicate  int          `json:"skipped_duplicate"`
	Submitted         int          `json:"submitted"`
	Failed            int          `json:"failed"`
	Partial           bool         `json:"partial"`
	BudgetUsed        int          `json:"budget_used"`
	FinalOdometerKm   float64      `json:"final_odometer_km"`
	OdometerGaps      []DateGap    `json:"odometer_gaps,omitempty"`
	Days              []DayOutcome `json:"days"`
}
