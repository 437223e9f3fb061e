package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/billfold/billfold/internal/domain"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const fileName = ".billfold.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .billfold.yaml from
// a directory (the user's home by default), then overlaying BILLFOLD_*
// environment variables.
type YAMLLoader struct {
	dir string
}

// New creates a loader reading from the user's home directory.
func New() *YAMLLoader {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &YAMLLoader{dir: home}
}

// NewWithDir creates a loader reading from an explicit directory.
func NewWithDir(dir string) *YAMLLoader {
	return &YAMLLoader{dir: dir}
}

// Load reads the config file if present, merges it over the defaults,
// applies environment overrides, and validates the result. A missing file
// is not an error.
func (l *YAMLLoader) Load() (domain.AppConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(l.dir, fileName))
	switch {
	case err == nil:
		var fileCfg domain.AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return domain.AppConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	default:
		return domain.AppConfig{}, err
	}

	// Env vars win over both file values and defaults.
	if err := envconfig.Process("", &cfg); err != nil {
		return domain.AppConfig{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.AppConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// mergeConfig overlays explicit file values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.AppConfig) domain.AppConfig {
	result := base
	if override.LedgerPath != "" {
		result.LedgerPath = override.LedgerPath
	}
	if override.PageSize != 0 {
		result.PageSize = override.PageSize
	}
	if override.DefaultTerms != 0 {
		result.DefaultTerms = override.DefaultTerms
	}
	if override.CurrencySymbol != "" {
		result.CurrencySymbol = override.CurrencySymbol
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	return result
}
