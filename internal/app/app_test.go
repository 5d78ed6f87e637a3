package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

const testConfig = `
server:
  port: "9090"
database:
  host: localhost
  port: 5432
  name: predictor
redis:
  enabled: false
energy:
  max: 50
scheduler:
  enabled: true
  dailyAt: "00:05"
cors:
  allowOrigins:
    - https://example.com
log:
  level: debug
`

func writeConfig(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.test.yml"), []byte(testConfig), 0o600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), writeConfig(t), "test")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.GetServerAddress())
	assert.Equal(t, 50, cfg.Energy.MaxEnergy)
	assert.Equal(t, 3, cfg.Energy.CatchUpCap)
	assert.Equal(t, 1, cfg.Energy.InitialEnergy)
	assert.Equal(t, 50, cfg.Energy.BulkBatchSize)
	assert.Equal(t, "00:05", cfg.Scheduler.DailyAt)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PREDICTOR_DATABASE_HOST", "db.internal")
	t.Setenv("PREDICTOR_ENERGY_MAX", "75")

	cfg, err := LoadConfig(viper.New(), writeConfig(t), "test")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 75, cfg.Energy.MaxEnergy)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), t.TempDir(), "test")
	assert.Error(t, err)
}

func TestOptions_GraphIsComplete(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), writeConfig(t), "test")
	require.NoError(t, err)

	a := &application{ctx: context.Background(), config: cfg}
	err = fx.ValidateApp(a.Options(), fx.Invoke(a.RegisterHooks), fx.NopLogger)
	assert.NoError(t, err)
}
