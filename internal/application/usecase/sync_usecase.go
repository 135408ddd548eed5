package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/repository"
	"github.com/evsync/spritsync-go/internal/domain/service"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

const (
	submitAttempts = 3
	retryBackoff   = 2 * time.Second
)

// TelemetryFactory builds a telemetry repository once credentials are known.
type TelemetryFactory func(cfg types.TelemetryConfig) repository.TelemetryRepository

// LedgerFactory builds a ledger repository once credentials are known.
type LedgerFactory func(cfg types.LedgerConfig) repository.LedgerRepository

// SyncUseCase drives one reconciliation run: fetch trips, aggregate into
// day buckets, project the odometer, classify, dedupe against the
// destination ledger and submit what is missing, all under the telemetry
// call budget. The driven repositories are constructed per run, after the
// configuration has been loaded.
type SyncUseCase struct {
	newTelemetry TelemetryFactory
	newLedger    LedgerFactory
	configRepo   repository.ConfigRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface

	now   func() time.Time
	sleep func(d time.Duration)
}

// NewSyncUseCase creates a new sync use case.
func NewSyncUseCase(
	newTelemetry TelemetryFactory,
	newLedger LedgerFactory,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *SyncUseCase {
	return &SyncUseCase{
		newTelemetry: newTelemetry,
		newLedger:    newLedger,
		configRepo:   configRepo,
		exportRepo:   exportRepo,
		console:      console,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// SetClock overrides the time source and retry sleep, for tests.
func (uc *SyncUseCase) SetClock(now func() time.Time, sleep func(d time.Duration)) {
	uc.now = now
	uc.sleep = sleep
}

// RunSync executes a full reconciliation run. Budget exhaustion and rate
// limiting end the run gracefully with a partial result; authentication
// failures against either service abort it.
func (uc *SyncUseCase) RunSync(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.loadConfig(args)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Sync.Timezone, err)
	}

	telemetryRepo := uc.newTelemetry(cfg.Telemetry)
	ledgerRepo := uc.newLedger(cfg.Ledger)

	budget := NewCallBudget(cfg.Sync.CallBudget)
	result := &entity.SyncResult{FinalOdometerKm: cfg.Sync.StartOdometerKm}

	status := uc.console.Status("Fetching trips from telemetry provider...")
	trips, halted, err := uc.fetchTrips(ctx, telemetryRepo, cfg, loc, budget)
	status.Stop()
	result.BudgetUsed = budget.Used()
	if err != nil {
		return err
	}
	if halted {
		result.Partial = true
		uc.report(result, args)
		return nil
	}

	buckets, err := service.Aggregate(trips, loc)
	if err != nil {
		return fmt.Errorf("aggregating trips: %w", err)
	}
	result.DaysConsidered = len(buckets)

	status = uc.console.Status("Fetching existing ledger entries...")
	existing, err := uc.listExistingEntries(ctx, ledgerRepo, cfg)
	status.Stop()
	if err != nil {
		return err
	}

	// Anchor the projection on the ledger's latest entry when there is
	// one; the configured starting odometer only seeds a fresh ledger.
	startOdometer := cfg.Sync.StartOdometerKm
	var anchorDate time.Time
	if len(existing) > 0 {
		startOdometer = existing[0].OdometerKm
		anchorDate = existing[0].Date
		result.FinalOdometerKm = startOdometer
		uc.console.LogInfo("Ledger anchor: %s at %.0f km",
			anchorDate.Format(entity.DateLayout), startOdometer)
	}

	sorted := service.SortedByDate(buckets)
	pending := make([]*entity.DayBucket, 0, len(sorted))
	for _, bucket := range sorted {
		// Days at or before the anchor are already covered by ledger
		// history and can no longer be projected from it.
		if !anchorDate.IsZero() && !bucket.Date.After(anchorDate) {
			result.SkippedDuplicate++
			result.Days = append(result.Days, skippedOutcome(bucket, entity.SkipDuplicate))
			continue
		}
		pending = append(pending, bucket)
	}

	days, gaps := service.Project(pending, startOdometer)
	result.OdometerGaps = gaps
	for _, gap := range gaps {
		uc.console.LogWarning("No trips recorded between %s and %s; odometer projection may under-count",
			gap.From.Format(entity.DateLayout), gap.To.Format(entity.DateLayout))
	}

	today := uc.now().In(loc)
	eligible, skipped := service.Classify(days, today)
	for _, s := range skipped {
		result.SkippedIncomplete++
		result.Days = append(result.Days, entity.DayOutcome{
			Date: s.Date, Status: entity.DayStatusSkipped, Reason: s.Reason,
		})
	}

	fresh, dupes, warnings := service.ResolveDuplicates(eligible, existing)
	for _, w := range warnings {
		uc.console.LogWarning("%s", w)
	}
	for _, d := range dupes {
		result.SkippedDuplicate++
		result.Days = append(result.Days, entity.DayOutcome{
			Date: d.Date, Status: entity.DayStatusSkipped, Reason: d.Reason,
		})
	}

	authErr := uc.submitAll(ctx, ledgerRepo, cfg, fresh, result)

	result.BudgetUsed = budget.Used()
	uc.report(result, args)
	if authErr != nil {
		return authErr
	}
	return nil
}

// ListVehicles prints the vehicles registered to the telemetry account, for
// operator discovery of a vehicle identifier.
func (uc *SyncUseCase) ListVehicles(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.loadConfig(args)
	if err != nil {
		return err
	}

	telemetryRepo := uc.newTelemetry(cfg.Telemetry)

	budget := NewCallBudget(cfg.Sync.CallBudget)
	if !budget.TryConsume() {
		return fmt.Errorf("call budget of %d exhausted before login", cfg.Sync.CallBudget)
	}
	if err := telemetryRepo.Login(ctx); err != nil {
		return err
	}

	if !budget.TryConsume() {
		return fmt.Errorf("call budget of %d exhausted before vehicle listing", cfg.Sync.CallBudget)
	}
	vehicles, err := telemetryRepo.FetchVehicles(ctx)
	if err != nil {
		return err
	}

	table := uc.console.CreateTable()
	table.AddColumn("Vehicle ID")
	table.AddColumn("Name")
	for _, v := range vehicles {
		table.AddRow(v.ID, v.Name)
	}
	uc.console.Print(table.Render())
	return nil
}

func (uc *SyncUseCase) loadConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg, err := uc.configRepo.Load(args.ConfigFile)
	if err != nil {
		return nil, err
	}
	if args.WindowDays != nil {
		cfg.Sync.WindowDays = *args.WindowDays
	}
	if args.CallBudget != nil {
		cfg.Sync.CallBudget = *args.CallBudget
	}
	return cfg, nil
}

// fetchTrips performs the budgeted telemetry calls. The bool result is true
// when the run must stop early but gracefully (budget exhausted or rate
// limited).
func (uc *SyncUseCase) fetchTrips(
	ctx context.Context,
	telemetryRepo repository.TelemetryRepository,
	cfg *types.Config,
	loc *time.Location,
	budget *CallBudget,
) ([]entity.TripRecord, bool, error) {
	if !budget.TryConsume() {
		uc.console.LogWarning("Call budget of %d exhausted before login; reporting partial result", cfg.Sync.CallBudget)
		return nil, true, nil
	}
	if err := telemetryRepo.Login(ctx); err != nil {
		return uc.classifyTelemetryFailure(err)
	}

	if !budget.TryConsume() {
		uc.console.LogWarning("Call budget of %d exhausted before trip fetch; reporting partial result", cfg.Sync.CallBudget)
		return nil, true, nil
	}

	now := uc.now().In(loc)
	until := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	since := until.AddDate(0, 0, -cfg.Sync.WindowDays)

	trips, err := telemetryRepo.FetchTrips(ctx, cfg.Telemetry.VehicleID, since, until)
	if err != nil {
		return uc.classifyTelemetryFailure(err)
	}
	return trips, false, nil
}

// classifyTelemetryFailure maps a telemetry error onto the run outcome:
// rate limiting halts gracefully, everything else is fatal.
func (uc *SyncUseCase) classifyTelemetryFailure(err error) ([]entity.TripRecord, bool, error) {
	var rateErr *types.RateLimitError
	if errors.As(err, &rateErr) {
		uc.console.LogWarning("Telemetry provider rate limited the run: %s", rateErr)
		return nil, true, nil
	}
	return nil, false, err
}

func (uc *SyncUseCase) listExistingEntries(ctx context.Context, ledgerRepo repository.LedgerRepository, cfg *types.Config) ([]entity.ExistingEntry, error) {
	// Fetch enough history to cover the whole window plus manual edits.
	limit := cfg.Sync.WindowDays * 2
	if limit < 10 {
		limit = 10
	}

	var entries []entity.ExistingEntry
	err := uc.withRetry(ctx, func() error {
		var listErr error
		entries, listErr = ledgerRepo.ListEntries(ctx, cfg.Ledger.VehicleID, cfg.Ledger.TankID, limit)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listing existing ledger entries: %w", err)
	}
	return entries, nil
}

// submitAll submits fresh days in ascending date order. Submitting out of
// order would break the ledger's odometer monotonicity for downstream
// consumers, so the order is load-bearing. Per-day failures are isolated;
// only an authentication failure halts the loop, and it is returned so the
// caller can abort after reporting the partial result.
func (uc *SyncUseCase) submitAll(
	ctx context.Context,
	ledgerRepo repository.LedgerRepository,
	cfg *types.Config,
	fresh []entity.ProjectedDay,
	result *entity.SyncResult,
) error {
	if len(fresh) == 0 {
		uc.console.LogInfo("Ledger already up to date, nothing to submit")
		return nil
	}

	pricing := service.Pricing{
		PricePerKwh: cfg.Pricing.ElectricityPrice,
		CurrencyID:  cfg.Pricing.CurrencyID,
	}

	progress := uc.console.ProgressWithTotal(len(fresh))
	defer progress.Stop()

	for _, day := range fresh {
		entry := service.BuildEntry(day, pricing)
		err := uc.withRetry(ctx, func() error {
			return ledgerRepo.CreateEntry(ctx, cfg.Ledger.VehicleID, cfg.Ledger.TankID, entry)
		})
		progress.Increment()

		if err != nil {
			result.Failed++
			result.Days = append(result.Days, entity.DayOutcome{
				Date:        entry.Date,
				Status:      entity.DayStatusFailed,
				DistanceKm:  entry.TripKm,
				OdometerKm:  entry.OdometerKm,
				QuantityKwh: entry.QuantityKwh,
				Error:       err.Error(),
			})

			var authErr *types.AuthError
			if errors.As(err, &authErr) {
				result.Partial = true
				uc.console.LogError("Ledger authentication failed, halting run: %s", authErr)
				return err
			}
			uc.console.LogError("Failed to submit %s: %s", entry.Date.Format(entity.DateLayout), err)
			continue
		}

		result.Submitted++
		result.FinalOdometerKm = entry.OdometerKm
		result.Days = append(result.Days, entity.DayOutcome{
			Date:        entry.Date,
			Status:      entity.DayStatusSubmitted,
			DistanceKm:  entry.TripKm,
			OdometerKm:  entry.OdometerKm,
			QuantityKwh: entry.QuantityKwh,
		})
	}

	return nil
}

// withRetry retries transient ledger failures a bounded number of times
// with linear backoff. Any other error returns immediately.
func (uc *SyncUseCase) withRetry(ctx context.Context, call func() error) error {
	var err error
	for attempt := 1; attempt <= submitAttempts; attempt++ {
		if err = call(); err == nil {
			return nil
		}
		var transient *types.TransientError
		if !errors.As(err, &transient) || attempt == submitAttempts {
			return err
		}
		uc.sleep(time.Duration(attempt) * retryBackoff)
	}
	return err
}

// report renders the run summary and writes the requested report files.
func (uc *SyncUseCase) report(result *entity.SyncResult, args *types.CLIArgs) {
	table := uc.console.CreateTable()
	table.AddColumn("Date")
	table.AddColumn("Status")
	table.AddColumn("Distance (km)")
	table.AddColumn("Odometer (km)")
	table.AddColumn("Energy (kWh)")
	table.AddColumn("Detail")

	for _, day := range result.Days {
		detail := string(day.Reason)
		if day.Error != "" {
			detail = day.Error
		}
		table.AddRow(
			day.Date.Format(entity.DateLayout),
			string(day.Status),
			fmt.Sprintf("%.1f", day.DistanceKm),
			fmt.Sprintf("%.1f", day.OdometerKm),
			fmt.Sprintf("%.1f", day.QuantityKwh),
			detail,
		)
	}
	uc.console.Print(table.Render())

	summary := fmt.Sprintf(
		"Considered %d day(s): %d submitted, %d duplicate, %d incomplete, %d failed (budget used: %d)",
		result.DaysConsidered, result.Submitted, result.SkippedDuplicate,
		result.SkippedIncomplete, result.Failed, result.BudgetUsed)
	if result.Partial {
		uc.console.LogWarning("Partial run. %s", summary)
	} else {
		uc.console.LogSuccess("%s", summary)
	}

	if args.ReportName == "" {
		return
	}
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(result, args.ReportName, args.Dir)
			uc.logExport("CSV", path, err)
		case "json":
			path, err := uc.exportRepo.ExportToJSON(result, args.ReportName, args.Dir)
			uc.logExport("JSON", path, err)
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(result, args.ReportName, args.Dir)
			uc.logExport("PDF", path, err)
		default:
			uc.console.LogWarning("Unknown report type %q, skipping", reportType)
		}
	}
}

func (uc *SyncUseCase) logExport(kind, path string, err error) {
	if err != nil {
		uc.console.LogError("Failed to export %s report: %s", kind, err)
		return
	}
	uc.console.LogSuccess("Successfully exported %s report: %s", kind, path)
}

func skippedOutcome(bucket *entity.DayBucket, reason entity.SkipReason) entity.DayOutcome {
	return entity.DayOutcome{
		Date:        bucket.Date,
		Status:      entity.DayStatusSkipped,
		Reason:      reason,
		DistanceKm:  bucket.DistanceKm,
		QuantityKwh: bucket.ConsumedKwh,
	}
}
