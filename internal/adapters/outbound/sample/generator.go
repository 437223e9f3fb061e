// Package sample generates randomized demo ledgers for first runs.
package sample

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/billfold/billfold/internal/domain"
	"github.com/shopspring/decimal"
)

var customerNames = []string{
	"Acme Manufacturing Ltd",
	"TechVista Solutions",
	"Green Valley Enterprises",
	"Metro Retail Corp",
	"Sunrise Textiles",
	"Digital Dynamics",
	"Classic Furniture Co",
	"Fresh Foods Distributors",
	"AutoParts Express",
	"Pacific Trading Company",
}

// Generator is a randomized implementation of domain.SampleSource.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded from the clock.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a deterministic generator for tests.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces count sample invoices issued within the last 60 days.
// Roughly 40% are paid, with payment dates between 5 days early and 10 days
// late but never in the future. Due dates always equal the invoice date
// plus the payment terms.
func (g *Generator) Generate(count int, today domain.Date) []domain.Invoice {
	if count <= 0 {
		count = len(customerNames)
	}

	invoices := make([]domain.Invoice, 0, count)
	for i := 0; i < count; i++ {
		daysAgo := g.rng.Intn(60) + 1
		invoiceDate := domain.AddDays(today, -daysAgo)
		terms := domain.PaymentTermsChoices[g.rng.Intn(len(domain.PaymentTermsChoices))]
		amount := decimal.NewFromInt(int64(g.rng.Intn(90000) + 10000))

		dueDate, err := domain.ComputeDueDate(invoiceDate, terms)
		if err != nil {
			// terms are drawn from a positive set; unreachable
			panic(err)
		}

		inv := domain.Invoice{
			ID:           fmt.Sprintf("INV-%03d", i+1),
			CustomerName: customerNames[i%len(customerNames)],
			Amount:       amount,
			InvoiceDate:  invoiceDate,
			PaymentTerms: terms,
			DueDate:      dueDate,
		}

		if g.rng.Float64() < 0.4 {
			offset := g.rng.Intn(16) - 5
			payment := domain.AddDays(dueDate, offset)
			if !today.Before(payment) {
				inv.PaymentDate = &payment
			}
		}

		invoices = append(invoices, inv)
	}
	return invoices
}
