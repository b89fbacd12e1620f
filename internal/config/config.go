// Package config loads and persists cartscope's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cartscope/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all cartscope configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Analysis   AnalysisConfig   `toml:"analysis"`
	Target     TargetConfig     `toml:"target"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds data location and ranking preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
	TopN    int    `toml:"top_n"`
	Status  string `toml:"status"` // default order-status filter, "all" disables
}

// AnalysisConfig holds the default analysis and baseline periods.
// A month of 0 means the full year.
type AnalysisConfig struct {
	CurrentYear   int `toml:"current_year"`
	CurrentMonth  int `toml:"current_month"`
	BaselineYear  int `toml:"baseline_year"`
	BaselineMonth int `toml:"baseline_month"`
}

// CurrentPeriod returns the configured analysis window.
func (a AnalysisConfig) CurrentPeriod() model.PeriodConfig {
	return model.PeriodConfig{Year: a.CurrentYear, Month: time.Month(a.CurrentMonth)}
}

// BaselinePeriod returns the configured comparison window.
func (a AnalysisConfig) BaselinePeriod() model.PeriodConfig {
	return model.PeriodConfig{Year: a.BaselineYear, Month: time.Month(a.BaselineMonth)}
}

// TargetConfig holds revenue target settings.
type TargetConfig struct {
	MonthlyRevenue float64 `toml:"monthly_revenue,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			TopN:   10,
			Status: string(model.StatusDelivered),
		},
		Analysis: AnalysisConfig{
			CurrentYear:  2023,
			BaselineYear: 2022,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cartscope")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cartscope")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
