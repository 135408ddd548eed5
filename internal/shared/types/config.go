package types

// TelemetryConfig holds credentials and connection settings for the vehicle
// telemetry provider.
type TelemetryConfig struct {
	BaseURL   string `json:"base_url" yaml:"base_url" toml:"base_url"`
	Username  string `json:"username" yaml:"username" toml:"username"`
	Password  string `json:"password" yaml:"password" toml:"password"`
	Pin       string `json:"pin" yaml:"pin" toml:"pin"`
	VehicleID string `json:"vehicle_id" yaml:"vehicle_id" toml:"vehicle_id"`
}

// LedgerConfig holds credentials and identifiers for the destination
// fuel-log service.
type LedgerConfig struct {
	BaseURL     string `json:"base_url" yaml:"base_url" toml:"base_url"`
	BearerToken string `json:"bearer_token" yaml:"bearer_token" toml:"bearer_token"`
	AppToken    string `json:"app_token" yaml:"app_token" toml:"app_token"`
	VehicleID   string `json:"vehicle_id" yaml:"vehicle_id" toml:"vehicle_id"`
	TankID      string `json:"tank_id" yaml:"tank_id" toml:"tank_id"`
}

// SyncConfig controls the reconciliation run itself.
type SyncConfig struct {
	WindowDays      int     `json:"window_days" yaml:"window_days" toml:"window_days"`
	CallBudget      int     `json:"call_budget" yaml:"call_budget" toml:"call_budget"`
	Timezone        string  `json:"timezone" yaml:"timezone" toml:"timezone"`
	StartOdometerKm float64 `json:"start_odometer_km" yaml:"start_odometer_km" toml:"start_odometer_km"`
}

// PricingConfig holds the unit price applied to submitted entries.
type PricingConfig struct {
	ElectricityPrice float64 `json:"electricity_price" yaml:"electricity_price" toml:"electricity_price"`
	CurrencyID       int     `json:"currency_id" yaml:"currency_id" toml:"currency_id"`
}

// Config represents the application configuration that can be loaded from a
// file and overridden from the environment. All values are static for a run.
type Config struct {
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry" toml:"telemetry"`
	Ledger    LedgerConfig    `json:"ledger" yaml:"ledger" toml:"ledger"`
	Sync      SyncConfig      `json:"sync" yaml:"sync" toml:"sync"`
	Pricing   PricingConfig   `json:"pricing" yaml:"pricing" toml:"pricing"`
}
