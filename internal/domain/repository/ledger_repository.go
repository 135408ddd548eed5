package repository

import (
	"context"

	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// LedgerRepository defines the interface to the destination fuel-log
// service.
//
//go:generate mockgen -destination=../../application/usecase/mocks/mock_ledger_repository.go -package=mocks -source=ledger_repository.go
type LedgerRepository interface {
	// ListEntries returns up to limit existing entries for the vehicle's
	// tank, newest first.
	ListEntries(ctx context.Context, vehicleID, tankID string, limit int) ([]entity.ExistingEntry, error)

	// CreateEntry submits a new consumption entry. Existing entries are
	// never overwritten.
	CreateEntry(ctx context.Context, vehicleID, tankID string, entry entity.LedgerEntry) error
}
