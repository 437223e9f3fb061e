// Package store persists the invoice ledger as a single JSON array on disk.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/billfold/billfold/internal/domain"
	"github.com/billfold/billfold/internal/logger"
	"github.com/rs/zerolog"
)

// Store is a file-based implementation of domain.LedgerStore.
type Store struct {
	path string
	log  zerolog.Logger
}

// New creates a store writing to the given file path.
func New(path string) *Store {
	return &Store{path: path, log: logger.WithComponent("store")}
}

// DefaultPath returns the standard ledger location under the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".billfold", "invoices.json")
}

// Load reads the ledger from disk. Returns (nil, nil) if no ledger exists.
// A file that exists but cannot be parsed wraps domain.ErrCorruptLedger so
// the caller can fall back instead of crashing.
func (s *Store) Load() ([]domain.Invoice, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no ledger is not an error
		}
		return nil, err
	}

	var invoices []domain.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptLedger, s.path, err)
	}
	s.log.Debug().Int("count", len(invoices)).Str("path", s.path).Msg("ledger loaded")
	return invoices, nil
}

// Save writes the ledger to disk, creating directories as needed. Last
// write wins; there is a single writer.
func (s *Store) Save(invoices []domain.Invoice) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(invoices, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return err
	}
	s.log.Debug().Int("count", len(invoices)).Str("path", s.path).Msg("ledger saved")
	return nil
}
