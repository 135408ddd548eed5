package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/evsync/spritsync-go/internal/domain/repository"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultWindowDays = 30
	DefaultCallBudget = 200
	DefaultTimezone   = "Europe/Budapest"
	DefaultTankID     = "1"
)

// ConfigRepositoryImpl implements ConfigRepository. Settings are read from an
// optional TOML/YAML/JSON file, then overridden from SPRITSYNC_* environment
// variables, then backfilled with defaults.
type ConfigRepositoryImpl struct{}

// NewConfigRepository creates a new implementation of ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// Load reads the configuration for a run. filePath may be empty, in which
// case only the environment and defaults apply.
func (r *ConfigRepositoryImpl) Load(filePath string) (*types.Config, error) {
	var config types.Config

	if filePath != "" {
		loaded, err := r.loadFile(filePath)
		if err != nil {
			return nil, err
		}
		config = *loaded
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *ConfigRepositoryImpl) loadFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

func applyEnvOverrides(config *types.Config) {
	setString(&config.Telemetry.BaseURL, "SPRITSYNC_TELEMETRY_BASE_URL")
	setString(&config.Telemetry.Username, "SPRITSYNC_TELEMETRY_USERNAME")
	setString(&config.Telemetry.Password, "SPRITSYNC_TELEMETRY_PASSWORD")
	setString(&config.Telemetry.Pin, "SPRITSYNC_TELEMETRY_PIN")
	setString(&config.Telemetry.VehicleID, "SPRITSYNC_TELEMETRY_VEHICLE_ID")

	setString(&config.Ledger.BaseURL, "SPRITSYNC_LEDGER_BASE_URL")
	setString(&config.Ledger.BearerToken, "SPRITSYNC_LEDGER_BEARER_TOKEN")
	setString(&config.Ledger.AppToken, "SPRITSYNC_LEDGER_APP_TOKEN")
	setString(&config.Ledger.VehicleID, "SPRITSYNC_LEDGER_VEHICLE_ID")
	setString(&config.Ledger.TankID, "SPRITSYNC_LEDGER_TANK_ID")

	setInt(&config.Sync.WindowDays, "SPRITSYNC_WINDOW_DAYS")
	setInt(&config.Sync.CallBudget, "SPRITSYNC_CALL_BUDGET")
	setString(&config.Sync.Timezone, "SPRITSYNC_TIMEZONE")
	setFloat(&config.Sync.StartOdometerKm, "SPRITSYNC_START_ODOMETER_KM")

	setFloat(&config.Pricing.ElectricityPrice, "SPRITSYNC_ELECTRICITY_PRICE")
	setInt(&config.Pricing.CurrencyID, "SPRITSYNC_CURRENCY_ID")
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

func setInt(target *int, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func setFloat(target *float64, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}

func applyDefaults(config *types.Config) {
	if config.Sync.WindowDays <= 0 {
		config.Sync.WindowDays = DefaultWindowDays
	}
	if config.Sync.CallBudget <= 0 {
		config.Sync.CallBudget = DefaultCallBudget
	}
	if config.Sync.Timezone == "" {
		config.Sync.Timezone = DefaultTimezone
	}
	if config.Ledger.TankID == "" {
		config.Ledger.TankID = DefaultTankID
	}
}

func validate(config *types.Config) error {
	missing := []string{}
	if config.Telemetry.Username == "" {
		missing = append(missing, "telemetry.username")
	}
	if config.Telemetry.Password == "" {
		missing = append(missing, "telemetry.password")
	}
	if config.Ledger.BearerToken == "" {
		missing = append(missing, "ledger.bearer_token")
	}
	if config.Ledger.AppToken == "" {
		missing = append(missing, "ledger.app_token")
	}
	if config.Ledger.VehicleID == "" {
		missing = append(missing, "ledger.vehicle_id")
	}
	if len(missing) > 0 {
		return &types.ValidationError{Msg: "missing required settings: " + strings.Join(missing, ", ")}
	}
	return nil
}
