package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	Currency CurrencyConfig
	Dataset  DatasetConfig
	Export   ExportConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// CurrencyConfig controls how money amounts are rendered
type CurrencyConfig struct {
	Suffix string // printed after the amount, e.g. "MMK"
}

// DatasetConfig locates the API snapshot the reports run over
type DatasetConfig struct {
	Path string
}

// ExportConfig holds report export settings
type ExportConfig struct {
	OutputDir string
	Workbook  string // Excel workbook file name
}

// Load reads configuration from multiple sources.
// Priority (highest to lowest):
// 1. Environment variables with WORKSHOP_ prefix (e.g., WORKSHOP_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("WORKSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Currency: CurrencyConfig{
			Suffix: v.GetString("currency.suffix"),
		},
		Dataset: DatasetConfig{
			Path: v.GetString("dataset.path"),
		},
		Export: ExportConfig{
			OutputDir: v.GetString("export.output_dir"),
			Workbook:  v.GetString("export.workbook"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "workshop-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Currency.Suffix == "" {
		cfg.Currency.Suffix = "MMK"
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "dataset.json"
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "reports"
	}
	if cfg.Export.Workbook == "" {
		cfg.Export.Workbook = "dashboard.xlsx"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console; got %q", c.Log.Format)
	}
	return nil
}
