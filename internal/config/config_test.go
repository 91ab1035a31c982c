package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacklehire/internal/report"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, 101, cfg.Hire.FirstCustomerID)
	assert.Equal(t, report.DefaultEquipmentWidth, cfg.Report.EquipmentWidth)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 101, cfg.Hire.FirstCustomerID)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log:
  level: debug
  format: json
catalog:
  path: /tmp/catalog.yaml
hire:
  first_customer_id: 500
report:
  equipment_width: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, 500, cfg.Hire.FirstCustomerID)
	assert.Equal(t, 40, cfg.Report.EquipmentWidth)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("FIRST_CUSTOMER_ID", "250")
	t.Setenv("REPORT_EQUIPMENT_WIDTH", "30")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 250, cfg.Hire.FirstCustomerID)
	assert.Equal(t, 30, cfg.Report.EquipmentWidth)
}

func TestValidate(t *testing.T) {
	t.Run("Negative first customer id", func(t *testing.T) {
		cfg := Config{Hire: HireConfig{FirstCustomerID: -5}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Equipment width below minimum", func(t *testing.T) {
		cfg := Config{Report: ReportConfig{EquipmentWidth: 5}}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "equipment width")
	})

	t.Run("Zero values become defaults", func(t *testing.T) {
		var cfg Config
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 101, cfg.Hire.FirstCustomerID)
		assert.Equal(t, report.DefaultEquipmentWidth, cfg.Report.EquipmentWidth)
	})
}
