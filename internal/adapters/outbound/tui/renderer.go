package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/billfold/billfold/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#34D399") // emerald
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	paidStyle    = lipgloss.NewStyle().Foreground(success)
	overdueStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(warning)
	errStyle     = lipgloss.NewStyle().Foreground(danger)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 2).
			Width(26)

	cardLabelStyle = lipgloss.NewStyle().Foreground(dim)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	invoiceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

// RenderSummary renders the four cash-flow cards side by side.
func RenderSummary(sum domain.Summary, symbol string) string {
	cards := []string{
		summaryCard("Outstanding", FormatCurrency(sum.TotalOutstanding, symbol), cardValueStyle),
		summaryCard("Overdue", FormatCurrency(sum.TotalOverdue, symbol), cardValueStyle.Foreground(danger)),
		summaryCard("Collected This Month", FormatCurrency(sum.TotalPaidThisMonth, symbol), cardValueStyle.Foreground(success)),
		summaryCard("Avg Payment Delay", formatDelay(sum), cardValueStyle),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n"
}

func summaryCard(label, value string, valueStyle lipgloss.Style) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

func formatDelay(sum domain.Summary) string {
	return sum.AvgPaymentDelay.StringFixed(1) + " days"
}

var tableColumns = []struct {
	name  string
	width int
}{
	{"ID", 10},
	{"Customer", 26},
	{"Amount", 12},
	{"Issued", 12},
	{"Due", 12},
	{"Status", 9},
	{"", 0},
}

// RenderInvoiceTable renders one page of invoices with status badges, aging
// text, and the "Showing X - Y of Z" footer.
func RenderInvoiceTable(page domain.Page, symbol string) string {
	var b strings.Builder

	if page.TotalItems == 0 {
		b.WriteString(dimStyle.Render("No invoices match the current filters.") + "\n")
		return b.String()
	}

	// Header
	b.WriteString("  ")
	for _, col := range tableColumns {
		b.WriteString(titleStyle.Render(padRight(col.name, col.width)) + "  ")
	}
	b.WriteString("\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 96)) + "\n")

	for _, v := range page.Items {
		b.WriteString("  ")
		b.WriteString(padRight(v.ID, 10) + "  ")
		b.WriteString(padRight(truncate(v.CustomerName, 26), 26) + "  ")
		b.WriteString(padLeft(FormatCurrency(v.Amount, symbol), 12) + "  ")
		b.WriteString(padRight(FormatDate(v.InvoiceDate), 12) + "  ")
		b.WriteString(padRight(FormatDate(v.DueDate), 12) + "  ")
		b.WriteString(statusBadge(v.Status) + "  ")
		b.WriteString(dimStyle.Render(v.DaysInfo))
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Showing %d - %d of %d invoices", page.From, page.To, page.TotalItems)))
	if page.TotalPages > 1 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ·  Page %d of %d", page.Number, page.TotalPages)))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderInvoice renders a single invoice as a confirmation card.
func RenderInvoice(v domain.InvoiceView, symbol string) string {
	var lines []string
	lines = append(lines, titleStyle.Render(v.ID)+"  "+statusBadge(v.Status))
	lines = append(lines, dimStyle.Render("Customer")+"  "+v.CustomerName)
	lines = append(lines, dimStyle.Render("Amount  ")+"  "+FormatCurrency(v.Amount, symbol))
	lines = append(lines, dimStyle.Render("Issued  ")+"  "+FormatDate(v.InvoiceDate)+
		dimStyle.Render(fmt.Sprintf("  (%d day terms)", v.PaymentTerms)))
	lines = append(lines, dimStyle.Render("Due     ")+"  "+FormatDate(v.DueDate))
	if v.Paid() {
		lines = append(lines, dimStyle.Render("Paid    ")+"  "+FormatDate(*v.PaymentDate))
	}
	lines = append(lines, faintStyle.Render(v.DaysInfo))
	return invoiceBoxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// RenderValidationErrors renders field-keyed creation errors, one per line
// in a stable order.
func RenderValidationErrors(errs domain.ValidationErrors) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, f := range fields {
		b.WriteString("  " + errStyle.Render("✗") + " " + errs[f] + dimStyle.Render("  ("+f+")") + "\n")
	}
	return b.String()
}

func statusBadge(s domain.Status) string {
	switch s {
	case domain.StatusPaid:
		return paidStyle.Render(padRight("paid", 9))
	case domain.StatusOverdue:
		return overdueStyle.Render(padRight("overdue", 9))
	default:
		return pendingStyle.Render(padRight("pending", 9))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
