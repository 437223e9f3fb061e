package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SortField selects the invoice attribute a view is ordered by.
type SortField string

const (
	SortByAmount  SortField = "amount"
	SortByDate    SortField = "date"
	SortByDueDate SortField = "dueDate"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortField parses a sort field value.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByAmount, SortByDate, SortByDueDate:
		return SortField(s), nil
	}
	return "", fmt.Errorf("invalid sort field %q: expected amount, date, or dueDate", s)
}

// ParseSortOrder parses a sort order value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortAsc, SortDesc:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("invalid sort order %q: expected asc or desc", s)
}

// Query holds the filter, search, and ordering parameters for one view.
type Query struct {
	Status    Status
	Search    string
	SortField SortField
	SortOrder SortOrder
}

// DefaultQuery matches every invoice, newest first.
func DefaultQuery() Query {
	return Query{Status: StatusAll, SortField: SortByDate, SortOrder: SortDesc}
}

// InvoiceView is an invoice with its derived fields attached. These fields
// are recomputed per view and never persisted.
type InvoiceView struct {
	Invoice
	Status   Status `json:"status"`
	DaysInfo string `json:"daysInfo"`
}

// BuildView derives status and aging for every invoice against a single
// "today" snapshot, then filters, searches, and stably sorts the result.
// The input slice is never mutated and the output is fully evaluated.
func BuildView(invoices []Invoice, q Query, today Date) []InvoiceView {
	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, InvoiceView{
			Invoice:  inv,
			Status:   DeriveStatus(inv, today),
			DaysInfo: DeriveAgingText(inv, today),
		})
	}

	if q.Status != "" && q.Status != StatusAll {
		kept := views[:0]
		for _, v := range views {
			if v.Status == q.Status {
				kept = append(kept, v)
			}
		}
		views = kept
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		kept := views[:0]
		for _, v := range views {
			if strings.Contains(strings.ToLower(v.ID), needle) ||
				strings.Contains(strings.ToLower(v.CustomerName), needle) {
				kept = append(kept, v)
			}
		}
		views = kept
	}

	// Stable sort: ties keep the order they entered with.
	sort.SliceStable(views, func(i, j int) bool {
		var cmp int
		switch q.SortField {
		case SortByAmount:
			cmp = views[i].Amount.Cmp(views[j].Amount)
		case SortByDueDate:
			cmp = views[i].DueDate.Compare(views[j].DueDate)
		default:
			cmp = views[i].InvoiceDate.Compare(views[j].InvoiceDate)
		}
		if q.SortOrder == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return views
}
