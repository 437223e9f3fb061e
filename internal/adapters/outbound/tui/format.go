package tui

import (
	"strings"

	"github.com/billfold/billfold/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with Indian-style digit grouping and no
// decimal places, e.g. ₹12,34,567.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(0)
	grouped := groupIndian(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + symbol + grouped
	}
	return symbol + grouped
}

// groupIndian inserts separators after the last three digits and then every
// two: "1234567" becomes "12,34,567".
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head, tail := digits[:n-3], digits[n-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// FormatDate renders a date as "2 Jan 2006". The zero date renders as a
// placeholder dash.
func FormatDate(d domain.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Time().Format("2 Jan 2006")
}
