package repository

import (
	"context"
	"time"

	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// TelemetryRepository defines the interface to the vehicle telemetry
// provider. Every method issues exactly one provider request; the caller is
// responsible for consuming a call-budget ticket before invoking it.
//
//go:generate mockgen -destination=../../application/usecase/mocks/mock_telemetry_repository.go -package=mocks -source=telemetry_repository.go
type TelemetryRepository interface {
	// Login obtains a session token for subsequent calls.
	Login(ctx context.Context) error

	// FetchVehicles lists the vehicles registered to the account.
	FetchVehicles(ctx context.Context) ([]entity.Vehicle, error)

	// FetchTrips returns the trips recorded for the vehicle between since
	// and until, inclusive.
	FetchTrips(ctx context.Context, vehicleID string, since, until time.Time) ([]entity.TripRecord, error)
}
