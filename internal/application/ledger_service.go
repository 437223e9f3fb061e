package application

import (
	"errors"
	"fmt"

	"github.com/billfold/billfold/internal/domain"
	"github.com/billfold/billfold/internal/logger"
	"github.com/rs/zerolog"
)

// SampleCount is the size of a freshly generated ledger.
const SampleCount = 10

// LedgerService orchestrates the invoice pipeline: load the ledger, apply a
// mutation, persist, and build derived views. It is the single writer over
// the store; every mutation persists the full collection before returning.
type LedgerService struct {
	store  domain.LedgerStore
	sample domain.SampleSource
	log    zerolog.Logger
}

// NewLedgerService wires a service over a store and a sample source.
func NewLedgerService(store domain.LedgerStore, sample domain.SampleSource) *LedgerService {
	return &LedgerService{
		store:  store,
		sample: sample,
		log:    logger.WithComponent("ledger"),
	}
}

// loadOrSeed returns the persisted ledger, seeding a sample collection when
// none exists yet. A corrupt ledger is replaced by a fresh sample collection
// rather than crashing; the previous content is unrecoverable by then and
// the worst case is a default view.
func (s *LedgerService) loadOrSeed(today domain.Date) ([]domain.Invoice, error) {
	invoices, err := s.store.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptLedger) {
			return nil, fmt.Errorf("loading ledger: %w", err)
		}
		s.log.Warn().Err(err).Msg("ledger unreadable, reseeding with sample data")
		invoices = nil
	}
	if invoices != nil {
		return invoices, nil
	}

	invoices = s.sample.Generate(SampleCount, today)
	if err := s.store.Save(invoices); err != nil {
		return nil, fmt.Errorf("saving seeded ledger: %w", err)
	}
	s.log.Info().Int("count", len(invoices)).Msg("seeded sample ledger")
	return invoices, nil
}

// View builds the filtered, sorted view of the full ledger.
func (s *LedgerService) View(q domain.Query, today domain.Date) ([]domain.InvoiceView, error) {
	invoices, err := s.loadOrSeed(today)
	if err != nil {
		return nil, err
	}
	return domain.BuildView(invoices, q, today), nil
}

// ListPage builds the view and slices out one page.
func (s *LedgerService) ListPage(q domain.Query, pageSize, page int, today domain.Date) (domain.Page, error) {
	views, err := s.View(q, today)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Paginate(views, pageSize, page), nil
}

// Summarize builds the view and aggregates it. The summary respects the
// same filters the list does.
func (s *LedgerService) Summarize(q domain.Query, today domain.Date) (domain.Summary, error) {
	views, err := s.View(q, today)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(views, today), nil
}

// Add validates the draft, assigns the next free ID, and persists the new
// invoice. Validation failures leave the ledger untouched.
func (s *LedgerService) Add(draft domain.InvoiceDraft, today domain.Date) (domain.Invoice, error) {
	invoices, err := s.loadOrSeed(today)
	if err != nil {
		return domain.Invoice{}, err
	}

	inv, err := domain.NewInvoice(draft, domain.NextID(invoices))
	if err != nil {
		return domain.Invoice{}, err
	}

	invoices = append(invoices, inv)
	if err := s.store.Save(invoices); err != nil {
		return domain.Invoice{}, fmt.Errorf("saving ledger: %w", err)
	}
	s.log.Info().Str("id", inv.ID).Str("customer", inv.CustomerName).Msg("invoice added")
	return inv, nil
}

// Pay marks an invoice paid and persists the change. All other fields are
// left untouched.
func (s *LedgerService) Pay(id string, paymentDate, today domain.Date) (domain.InvoiceView, error) {
	invoices, err := s.loadOrSeed(today)
	if err != nil {
		return domain.InvoiceView{}, err
	}

	idx := indexByID(invoices, id)
	if idx < 0 {
		return domain.InvoiceView{}, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}
	if err := invoices[idx].MarkPaid(paymentDate); err != nil {
		return domain.InvoiceView{}, fmt.Errorf("invoice %s: %w", id, err)
	}

	if err := s.store.Save(invoices); err != nil {
		return domain.InvoiceView{}, fmt.Errorf("saving ledger: %w", err)
	}
	inv := invoices[idx]
	s.log.Info().Str("id", inv.ID).Stringer("paymentDate", paymentDate).Msg("invoice paid")
	return domain.InvoiceView{
		Invoice:  inv,
		Status:   domain.DeriveStatus(inv, today),
		DaysInfo: domain.DeriveAgingText(inv, today),
	}, nil
}

// Remove deletes an invoice from the ledger.
func (s *LedgerService) Remove(id string, today domain.Date) (domain.Invoice, error) {
	invoices, err := s.loadOrSeed(today)
	if err != nil {
		return domain.Invoice{}, err
	}

	idx := indexByID(invoices, id)
	if idx < 0 {
		return domain.Invoice{}, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}

	removed := invoices[idx]
	invoices = append(invoices[:idx], invoices[idx+1:]...)
	if err := s.store.Save(invoices); err != nil {
		return domain.Invoice{}, fmt.Errorf("saving ledger: %w", err)
	}
	s.log.Info().Str("id", removed.ID).Msg("invoice removed")
	return removed, nil
}

// ErrLedgerExists is returned by Seed when a ledger is already present and
// force was not requested.
var ErrLedgerExists = errors.New("ledger already exists, use force to overwrite")

// Seed replaces the ledger with freshly generated sample invoices.
func (s *LedgerService) Seed(count int, force bool, today domain.Date) ([]domain.Invoice, error) {
	existing, err := s.store.Load()
	if err != nil && !errors.Is(err, domain.ErrCorruptLedger) {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	if !force && (existing != nil || errors.Is(err, domain.ErrCorruptLedger)) {
		return nil, ErrLedgerExists
	}

	invoices := s.sample.Generate(count, today)
	if err := s.store.Save(invoices); err != nil {
		return nil, fmt.Errorf("saving ledger: %w", err)
	}
	s.log.Info().Int("count", len(invoices)).Msg("ledger seeded")
	return invoices, nil
}

func indexByID(invoices []domain.Invoice, id string) int {
	for i, inv := range invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}
