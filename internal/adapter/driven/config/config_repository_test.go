package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evsync/spritsync-go/internal/adapter/driven/config"
	"github.com/evsync/spritsync-go/internal/shared/types"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const tomlConfig = `
[telemetry]
base_url = "https://telemetry.example.com"
username = "user@example.com"
password = "secret"
vehicle_id = "veh-1"

[ledger]
base_url = "https://ledger.example.com"
bearer_token = "bearer-tok"
app_token = "app-tok"
vehicle_id = "123"

[sync]
window_days = 14
start_odometer_km = 10000

[pricing]
electricity_price = 41.0
currency_id = 11
`

func TestLoadTOMLAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlConfig)

	repo := config.NewConfigRepository()
	cfg, err := repo.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", cfg.Telemetry.Username)
	assert.Equal(t, "123", cfg.Ledger.VehicleID)
	assert.Equal(t, 14, cfg.Sync.WindowDays)
	assert.InDelta(t, 41.0, cfg.Pricing.ElectricityPrice, 1e-9)

	// Unset values fall back to defaults.
	assert.Equal(t, config.DefaultCallBudget, cfg.Sync.CallBudget)
	assert.Equal(t, config.DefaultTimezone, cfg.Sync.Timezone)
	assert.Equal(t, config.DefaultTankID, cfg.Ledger.TankID)
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
telemetry:
  username: user@example.com
  password: secret
ledger:
  bearer_token: bearer-tok
  app_token: app-tok
  vehicle_id: "123"
sync:
  call_budget: 50
`)

	repo := config.NewConfigRepository()
	cfg, err := repo.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Sync.CallBudget)
	assert.Equal(t, config.DefaultWindowDays, cfg.Sync.WindowDays)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlConfig)
	t.Setenv("SPRITSYNC_WINDOW_DAYS", "7")
	t.Setenv("SPRITSYNC_LEDGER_BEARER_TOKEN", "env-tok")

	repo := config.NewConfigRepository()
	cfg, err := repo.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Sync.WindowDays)
	assert.Equal(t, "env-tok", cfg.Ledger.BearerToken)
}

func TestLoadWithoutFileUsesEnvironment(t *testing.T) {
	t.Setenv("SPRITSYNC_TELEMETRY_USERNAME", "user@example.com")
	t.Setenv("SPRITSYNC_TELEMETRY_PASSWORD", "secret")
	t.Setenv("SPRITSYNC_LEDGER_BEARER_TOKEN", "bearer-tok")
	t.Setenv("SPRITSYNC_LEDGER_APP_TOKEN", "app-tok")
	t.Setenv("SPRITSYNC_LEDGER_VEHICLE_ID", "123")

	repo := config.NewConfigRepository()
	cfg, err := repo.Load("")
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", cfg.Telemetry.Username)
	assert.Equal(t, config.DefaultWindowDays, cfg.Sync.WindowDays)
}

func TestLoadMissingRequiredSettings(t *testing.T) {
	repo := config.NewConfigRepository()
	_, err := repo.Load("")
	require.Error(t, err)
	var valErr *types.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), "telemetry.username")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTempConfig(t, "config.ini", "key=value")

	repo := config.NewConfigRepository()
	_, err := repo.Load(path)
	assert.Error(t, err)
}
