package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/billfold/billfold/internal/adapters/outbound/config"
	"github.com/billfold/billfold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".billfold.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	loader := appconfig.NewWithDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
page_size: 25
default_terms: 45
currency_symbol: "$"
`)

	cfg, err := appconfig.NewWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 45, cfg.DefaultTerms)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	// Unspecified values keep their defaults.
	assert.Equal(t, domain.DefaultConfig().LogLevel, cfg.LogLevel)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.NewWithDir(dir).Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .billfold.yaml")
}

func TestYAMLLoader_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `page_size: -3`)

	_, err := appconfig.NewWithDir(dir).Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
}

func TestYAMLLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `page_size: 25`)
	t.Setenv("BILLFOLD_PAGE_SIZE", "40")
	t.Setenv("BILLFOLD_LOG_LEVEL", "debug")

	cfg, err := appconfig.NewWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestYAMLLoader_LedgerPathFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `ledger_path: /tmp/ledger.json`)

	cfg, err := appconfig.NewWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.json", cfg.LedgerPath)
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.NewWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}
