package domain

import "fmt"

// AppConfig holds user-tunable settings loaded from .billfold.yaml and
// BILLFOLD_* environment overrides.
type AppConfig struct {
	LedgerPath     string `yaml:"ledger_path"     envconfig:"BILLFOLD_LEDGER_PATH"`
	PageSize       int    `yaml:"page_size"       envconfig:"BILLFOLD_PAGE_SIZE"`
	DefaultTerms   int    `yaml:"default_terms"   envconfig:"BILLFOLD_DEFAULT_TERMS"`
	CurrencySymbol string `yaml:"currency_symbol" envconfig:"BILLFOLD_CURRENCY_SYMBOL"`
	LogLevel       string `yaml:"log_level"       envconfig:"BILLFOLD_LOG_LEVEL"`
}

// DefaultConfig returns the configuration used when no .billfold.yaml
// exists. An empty LedgerPath means "resolve the standard location".
func DefaultConfig() AppConfig {
	return AppConfig{
		PageSize:       DefaultPageSize,
		DefaultTerms:   30,
		CurrencySymbol: "₹",
		LogLevel:       "warn",
	}
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "error": true, "fatal": true, "panic": true,
}

// Validate rejects config values the application cannot run with. Invalid
// values are surfaced at load, never silently corrected.
func (c AppConfig) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.DefaultTerms <= 0 {
		return fmt.Errorf("default_terms must be positive, got %d", c.DefaultTerms)
	}
	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
