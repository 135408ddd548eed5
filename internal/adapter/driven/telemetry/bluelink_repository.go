package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/repository"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

const (
	serviceName    = "telemetry"
	requestTimeout = 30 * time.Second
	dateParam      = "20060102"
)

// BluelinkRepository implements TelemetryRepository against a
// Bluelink/UVO-style connected-car REST API.
type BluelinkRepository struct {
	baseURL  string
	username string
	password string
	pin      string
	client   *http.Client

	token string
}

// NewBluelinkRepository creates a new telemetry repository implementation.
func NewBluelinkRepository(cfg types.TelemetryConfig) repository.TelemetryRepository {
	return &BluelinkRepository{
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
		pin:      cfg.Pin,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// Login obtains a bearer token for subsequent calls.
func (r *BluelinkRepository) Login(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{
		"username": r.username,
		"password": r.password,
		"pin":      r.pin,
	})
	if err != nil {
		return fmt.Errorf("encoding login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/auth/token", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := r.do(req)
	if err != nil {
		return err
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}
	if resp.AccessToken == "" {
		return &types.AuthError{Service: serviceName, Err: fmt.Errorf("empty access token")}
	}

	r.token = resp.AccessToken
	return nil
}

// FetchVehicles lists the vehicles registered to the account.
func (r *BluelinkRepository) FetchVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	body, err := r.get(ctx, "/v1/vehicles", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Vehicles []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"vehicles"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding vehicle list: %w", err)
	}

	vehicles := make([]entity.Vehicle, 0, len(resp.Vehicles))
	for _, v := range resp.Vehicles {
		vehicles = append(vehicles, entity.Vehicle{ID: v.ID, Name: v.Name})
	}
	return vehicles, nil
}

// tripDTO is the provider's wire representation of one trip. Energy values
// arrive in Wh.
type tripDTO struct {
	Start          string  `json:"start"`
	End            string  `json:"end"`
	DistanceKm     float64 `json:"distance_km"`
	ConsumedWh     float64 `json:"consumed_wh"`
	DrivetrainWh   float64 `json:"drivetrain_wh"`
	ClimateWh      float64 `json:"climate_wh"`
	ElectronicsWh  float64 `json:"electronics_wh"`
	BatteryCareWh  float64 `json:"battery_care_wh"`
	RegeneratedWh  float64 `json:"regenerated_wh"`
	ChargedWh      float64 `json:"charged_wh"`
	ChargeTypeFlag string  `json:"charge_type"`
}

// FetchTrips returns the trips recorded between since and until.
func (r *BluelinkRepository) FetchTrips(ctx context.Context, vehicleID string, since, until time.Time) ([]entity.TripRecord, error) {
	query := url.Values{}
	query.Set("from", since.Format(dateParam))
	query.Set("to", until.Format(dateParam))

	body, err := r.get(ctx, "/v1/vehicles/"+url.PathEscape(vehicleID)+"/trips", query)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Trips []tripDTO `json:"trips"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding trip list: %w", err)
	}

	trips := make([]entity.TripRecord, 0, len(resp.Trips))
	for i, dto := range resp.Trips {
		trip, err := dto.toRecord()
		if err != nil {
			return nil, fmt.Errorf("trip %d: %w", i, err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

func (dto tripDTO) toRecord() (entity.TripRecord, error) {
	start, err := time.Parse(time.RFC3339, dto.Start)
	if err != nil {
		return entity.TripRecord{}, fmt.Errorf("parsing start time %q: %w", dto.Start, err)
	}
	end, err := time.Parse(time.RFC3339, dto.End)
	if err != nil {
		return entity.TripRecord{}, fmt.Errorf("parsing end time %q: %w", dto.End, err)
	}

	chargeType := entity.ChargeTypeNone
	switch dto.ChargeTypeFlag {
	case "ac", "AC":
		chargeType = entity.ChargeTypeAC
	case "dc", "DC":
		chargeType = entity.ChargeTypeDC
	}

	return entity.TripRecord{
		Start:          start,
		End:            end,
		DistanceKm:     dto.DistanceKm,
		ConsumedKwh:    dto.ConsumedWh / 1000,
		Consumed: entity.EnergyBreakdown{
			DrivetrainKwh:  dto.DrivetrainWh / 1000,
			ClimateKwh:     dto.ClimateWh / 1000,
			ElectronicsKwh: dto.ElectronicsWh / 1000,
			BatteryCareKwh: dto.BatteryCareWh / 1000,
		},
		RegeneratedKwh: dto.RegeneratedWh / 1000,
		ChargedKwh:     dto.ChargedWh / 1000,
		ChargeType:     chargeType,
	}, nil
}

func (r *BluelinkRepository) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := r.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)

	return r.do(req)
}

// do executes the request and maps response codes onto the error taxonomy.
func (r *BluelinkRepository) do(req *http.Request) ([]byte, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &types.TransientError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.TransientError{Service: serviceName, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &types.AuthError{Service: serviceName, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &types.RateLimitError{Service: serviceName, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	case resp.StatusCode >= 500:
		return nil, &types.TransientError{Service: serviceName, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	default:
		return nil, fmt.Errorf("%s: unexpected status %d: %s", serviceName, resp.StatusCode, body)
	}
}
