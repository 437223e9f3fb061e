package domain

import "errors"

// ErrCorruptLedger marks a ledger file that exists but cannot be parsed.
// Callers may fall back to a freshly generated collection.
var ErrCorruptLedger = errors.New("ledger file is not valid JSON")

// LedgerStore persists the invoice collection. Load returns (nil, nil) when
// no ledger exists yet; parse failures wrap ErrCorruptLedger.
type LedgerStore interface {
	Load() ([]Invoice, error)
	Save(invoices []Invoice) error
}

// ConfigLoader reads the application configuration.
type ConfigLoader interface {
	Load() (AppConfig, error)
}

// SampleSource produces a generated ledger for first runs and demos.
type SampleSource interface {
	Generate(count int, today Date) []Invoice
}
