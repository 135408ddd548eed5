package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evsync/spritsync-go/internal/adapter/driven/telemetry"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

func newRepo(serverURL string) *telemetry.BluelinkRepository {
	repo := telemetry.NewBluelinkRepository(types.TelemetryConfig{
		BaseURL:  serverURL,
		Username: "user@example.com",
		Password: "secret",
		Pin:      "1234",
	})
	return repo.(*telemetry.BluelinkRepository)
}

func TestLoginStoresToken(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"access_token": "tok-123"}`))
	}))
	defer server.Close()

	repo := newRepo(server.URL)
	err := repo.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/v1/auth/token", gotPath)
}

func TestLoginEmptyTokenIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	repo := newRepo(server.URL)
	err := repo.Login(context.Background())
	var authErr *types.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestFetchTripsConvertsUnits(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"trips": [{
			"start": "2025-03-10T08:00:00Z",
			"end": "2025-03-10T09:00:00Z",
			"distance_km": 50,
			"consumed_wh": 9700,
			"drivetrain_wh": 8000,
			"climate_wh": 1000,
			"electronics_wh": 500,
			"battery_care_wh": 200,
			"regenerated_wh": 1500,
			"charged_wh": 0,
			"charge_type": "none"
		}]}`))
	}))
	defer server.Close()

	repo := newRepo(server.URL)
	since := time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	trips, err := repo.FetchTrips(context.Background(), "veh-1", since, until)
	require.NoError(t, err)
	require.Len(t, trips, 1)

	assert.Contains(t, gotQuery, "from=20250209")
	assert.Contains(t, gotQuery, "to=20250311")

	trip := trips[0]
	assert.InDelta(t, 9.7, trip.ConsumedKwh, 1e-9)
	assert.InDelta(t, 8.0, trip.Consumed.DrivetrainKwh, 1e-9)
	assert.InDelta(t, 1.5, trip.RegeneratedKwh, 1e-9)
	assert.InDelta(t, 50.0, trip.DistanceKm, 1e-9)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var authErr *types.AuthError
				assert.ErrorAs(t, err, &authErr)
			},
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				var rateErr *types.RateLimitError
				assert.ErrorAs(t, err, &rateErr)
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var transient *types.TransientError
				assert.ErrorAs(t, err, &transient)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			repo := newRepo(server.URL)
			_, err := repo.FetchVehicles(context.Background())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
