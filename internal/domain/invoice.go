package domain

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Status is the derived lifecycle state of an invoice. It is recomputed on
// every read and never stored.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusPending Status = "pending"

	// StatusAll is the filter sentinel that matches every status.
	StatusAll Status = "all"
)

// ParseStatus parses a status filter value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAll, StatusPaid, StatusOverdue, StatusPending:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q: expected all, pending, overdue, or paid", s)
}

// PaymentTermsChoices are the terms offered on the creation form. The core
// accepts any positive integer; this set only drives defaults and sampling.
var PaymentTermsChoices = []int{7, 15, 30, 45, 60}

// Invoice is one billing record, tracked from issuance to payment. All
// fields except PaymentDate are fixed at creation; DueDate is always
// InvoiceDate + PaymentTerms days.
type Invoice struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	InvoiceDate  Date            `json:"invoiceDate"`
	PaymentTerms int             `json:"paymentTerms"`
	DueDate      Date            `json:"dueDate"`
	PaymentDate  *Date           `json:"paymentDate"`
}

// Paid reports whether the invoice has a payment date.
func (i Invoice) Paid() bool {
	return i.PaymentDate != nil && !i.PaymentDate.IsZero()
}

var (
	// ErrAlreadyPaid is returned when marking a paid invoice paid again.
	ErrAlreadyPaid = errors.New("invoice is already paid")
	// ErrNotFound is returned when an invoice ID is not in the ledger.
	ErrNotFound = errors.New("invoice not found")
)

// MarkPaid records the payment date. Once set it is immutable; there is no
// unpay operation. A payment date before the invoice date is accepted,
// matching the historical behavior of the creation form.
func (i *Invoice) MarkPaid(paymentDate Date) error {
	if i.Paid() {
		return ErrAlreadyPaid
	}
	if paymentDate.IsZero() {
		return errors.New("payment date is required")
	}
	d := paymentDate
	i.PaymentDate = &d
	return nil
}

// InvoiceDraft is raw user input for the creation path. Fields arrive as
// strings the way a form or flag parser delivers them.
type InvoiceDraft struct {
	CustomerName string `json:"customerName" validate:"required"`
	Amount       string `json:"amount" validate:"required"`
	InvoiceDate  string `json:"invoiceDate" validate:"required,datetime=2006-01-02"`
	PaymentTerms int    `json:"paymentTerms" validate:"required,gt=0"`
}

// ValidationErrors maps draft field names to human-readable messages.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid invoice: " + strings.Join(parts, "; ")
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	// Key validation errors by the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func draftMessage(field, tag string) string {
	switch field {
	case "customerName":
		return "Customer name is required"
	case "amount":
		return "Amount must be greater than 0"
	case "invoiceDate":
		if tag == "datetime" {
			return "Invoice date must be a valid YYYY-MM-DD date"
		}
		return "Invoice date is required"
	case "paymentTerms":
		return "Payment terms must be a positive number of days"
	}
	return "Invalid value"
}

// Validate checks the draft and returns field-keyed messages, or nil when
// the draft is valid. No state changes on failure.
func (d InvoiceDraft) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if err := draftValidator.Struct(d); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs[fe.Field()] = draftMessage(fe.Field(), fe.Tag())
		}
	}
	if _, seen := errs["customerName"]; !seen && strings.TrimSpace(d.CustomerName) == "" {
		errs["customerName"] = draftMessage("customerName", "required")
	}
	if _, seen := errs["amount"]; !seen {
		amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
		if err != nil || amount.LessThanOrEqual(decimal.Zero) {
			errs["amount"] = draftMessage("amount", "gt")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NewInvoice validates the draft and constructs an unpaid invoice with the
// given ID and a derived due date.
func NewInvoice(d InvoiceDraft, id string) (Invoice, error) {
	if errs := d.Validate(); errs != nil {
		return Invoice{}, errs
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil {
		return Invoice{}, fmt.Errorf("parsing amount: %w", err)
	}
	invoiceDate, err := ParseDate(d.InvoiceDate)
	if err != nil {
		return Invoice{}, err
	}
	dueDate, err := ComputeDueDate(invoiceDate, d.PaymentTerms)
	if err != nil {
		return Invoice{}, err
	}
	return Invoice{
		ID:           id,
		CustomerName: strings.TrimSpace(d.CustomerName),
		Amount:       amount,
		InvoiceDate:  invoiceDate,
		PaymentTerms: d.PaymentTerms,
		DueDate:      dueDate,
	}, nil
}

// NextID returns the next sequential INV-NNN identifier not already present
// in the ledger.
func NextID(invoices []Invoice) string {
	used := make(map[string]bool, len(invoices))
	for _, inv := range invoices {
		used[inv.ID] = true
	}
	for n := len(invoices) + 1; ; n++ {
		id := fmt.Sprintf("INV-%03d", n)
		if !used[id] {
			return id
		}
	}
}
