package domain_test

import (
	"testing"

	"github.com/billfold/billfold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, 30, cfg.DefaultTerms)
	assert.Empty(t, cfg.LedgerPath)
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.AppConfig)
		ok     bool
	}{
		{"defaults", func(c *domain.AppConfig) {}, true},
		{"zero page size", func(c *domain.AppConfig) { c.PageSize = 0 }, false},
		{"negative page size", func(c *domain.AppConfig) { c.PageSize = -1 }, false},
		{"zero terms", func(c *domain.AppConfig) { c.DefaultTerms = 0 }, false},
		{"unknown log level", func(c *domain.AppConfig) { c.LogLevel = "loud" }, false},
		{"debug log level", func(c *domain.AppConfig) { c.LogLevel = "debug" }, true},
		{"empty log level", func(c *domain.AppConfig) { c.LogLevel = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}
