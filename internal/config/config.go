package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tacklehire/internal/report"
)

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
	Hire    HireConfig    `yaml:"hire"`
	Report  ReportConfig  `yaml:"report"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// CatalogConfig names an optional external price-list file. When Path is
// empty the built-in price list is used.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// HireConfig contains hire-session settings
type HireConfig struct {
	FirstCustomerID int `yaml:"first_customer_id"`
}

// ReportConfig contains earnings-report layout settings
type ReportConfig struct {
	EquipmentWidth int `yaml:"equipment_width"`
}

// Load reads configuration from a YAML file, then applies environment
// overrides and validation defaults. An empty path or a missing file is
// not an error for a console tool: the defaults apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("CATALOG_PATH"); val != "" {
		c.Catalog.Path = val
	}
	if val := os.Getenv("FIRST_CUSTOMER_ID"); val != "" {
		fmt.Sscanf(val, "%d", &c.Hire.FirstCustomerID)
	}
	if val := os.Getenv("REPORT_EQUIPMENT_WIDTH"); val != "" {
		fmt.Sscanf(val, "%d", &c.Report.EquipmentWidth)
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Hire.FirstCustomerID == 0 {
		c.Hire.FirstCustomerID = 101
	}
	if c.Hire.FirstCustomerID < 1 {
		return fmt.Errorf("invalid first customer id: %d", c.Hire.FirstCustomerID)
	}

	if c.Report.EquipmentWidth == 0 {
		c.Report.EquipmentWidth = report.DefaultEquipmentWidth
	}
	if c.Report.EquipmentWidth < report.MinEquipmentWidth {
		return fmt.Errorf("report equipment width must be at least %d, got %d",
			report.MinEquipmentWidth, c.Report.EquipmentWidth)
	}

	return nil
}
