package domain

// DefaultPageSize is the number of invoices shown per page.
const DefaultPageSize = 15

// Page is one contiguous window over a sorted view, plus the metadata the
// list footer needs. From and To are 1-based positions ("Showing X - Y of
// Z"); both are zero for an empty page.
type Page struct {
	Items      []InvoiceView `json:"items"`
	Number     int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
	From       int           `json:"from"`
	To         int           `json:"to"`
}

// Paginate slices the sorted view into the requested page. Out-of-range
// page numbers clamp into [1, totalPages] rather than erroring. Page
// selection is invalidated whenever the filtered result count changes; the
// caller re-runs Paginate against the fresh view, and clamping covers any
// stale page number.
func Paginate(views []InvoiceView, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(views)
	totalPages := (total + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	p := Page{
		Items:      views[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
	if len(p.Items) > 0 {
		p.From = start + 1
		p.To = end
	}
	return p
}
