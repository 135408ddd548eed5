package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/evsync/spritsync-go/internal/domain/entity"
	"github.com/evsync/spritsync-go/internal/domain/repository"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

const (
	serviceName    = "ledger"
	requestTimeout = 30 * time.Second

	// The destination API exchanges dates as DD.MM.YYYY.
	wireDateLayout = "02.01.2006"
)

// SpritmonitorRepository implements LedgerRepository against a
// Spritmonitor-style fuel-log REST API. Uploads are sent as query-string
// requests, which is how the destination API takes them.
type SpritmonitorRepository struct {
	baseURL     string
	bearerToken string
	appToken    string
	client      *http.Client
}

// NewSpritmonitorRepository creates a new ledger repository implementation.
func NewSpritmonitorRepository(cfg types.LedgerConfig) repository.LedgerRepository {
	return &SpritmonitorRepository{
		baseURL:     cfg.BaseURL,
		bearerToken: cfg.BearerToken,
		appToken:    cfg.AppToken,
		client:      &http.Client{Timeout: requestTimeout},
	}
}

// fuelingDTO is the wire representation of an existing entry. Odometer
// arrives as a string.
type fuelingDTO struct {
	Date     string `json:"date"`
	Odometer string `json:"odometer"`
}

// ListEntries returns up to limit existing entries, newest first.
func (r *SpritmonitorRepository) ListEntries(ctx context.Context, vehicleID, tankID string, limit int) ([]entity.ExistingEntry, error) {
	endpoint := fmt.Sprintf("%s/v1/vehicle/%s/tank/%s/fuelings.json?offset=0&limit=%d",
		r.baseURL, url.PathEscape(vehicleID), url.PathEscape(tankID), limit)

	body, err := r.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var dtos []fuelingDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("decoding fueling list: %w", err)
	}

	entries := make([]entity.ExistingEntry, 0, len(dtos))
	for i, dto := range dtos {
		date, err := time.Parse(wireDateLayout, dto.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: parsing date %q: %w", i, dto.Date, err)
		}
		odometer, err := strconv.ParseFloat(dto.Odometer, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d: parsing odometer %q: %w", i, dto.Odometer, err)
		}
		entries = append(entries, entity.ExistingEntry{Date: date, OdometerKm: odometer})
	}
	return entries, nil
}

// CreateEntry submits a new consumption entry.
func (r *SpritmonitorRepository) CreateEntry(ctx context.Context, vehicleID, tankID string, entry entity.LedgerEntry) error {
	query := url.Values{}
	query.Set("date", entry.Date.Format(wireDateLayout))
	query.Set("odometer", strconv.Itoa(int(entry.OdometerKm)))
	query.Set("trip", formatKwh(entry.TripKm))
	query.Set("quantity", formatKwh(entry.QuantityKwh))
	query.Set("type", entry.FuelingType)
	query.Set("price", strconv.FormatFloat(entry.Price, 'f', -1, 64))
	query.Set("currencyid", strconv.Itoa(entry.CurrencyID))
	query.Set("pricetype", strconv.Itoa(entry.PriceTypeID))
	query.Set("fuelsortid", strconv.Itoa(entry.FuelSortID))
	query.Set("quantityunitid", strconv.Itoa(entry.QuantityUnitID))
	if entry.ChargeInfo != "" {
		query.Set("charge_info", entry.ChargeInfo)
	}
	if entry.BCConsumption > 0 {
		query.Set("bc_consumption", formatKwh(entry.BCConsumption))
	}
	if entry.BCQuantityKwh > 0 {
		query.Set("bc_quantity", formatKwh(entry.BCQuantityKwh))
	}
	if entry.Note != "" {
		query.Set("note", entry.Note)
	}

	endpoint := fmt.Sprintf("%s/v1/vehicle/%s/tank/%s/fueling.json?%s",
		r.baseURL, url.PathEscape(vehicleID), url.PathEscape(tankID), query.Encode())

	_, err := r.get(ctx, endpoint)
	return err
}

func formatKwh(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (r *SpritmonitorRepository) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building ledger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.bearerToken)
	req.Header.Set("Application-ID", r.appToken)
	req.Header.Set("User-Agent", "spritsync")

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
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, &types.ValidationError{Msg: fmt.Sprintf("%s rejected request: status %d: %s", serviceName, resp.StatusCode, body)}
	case resp.StatusCode >= 500:
		return nil, &types.TransientError{Service: serviceName, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	default:
		return nil, fmt.Errorf("%s: unexpected status %d: %s", serviceName, resp.StatusCode, body)
	}
}
