package domain

import "fmt"

// DeriveStatus computes the lifecycle status of an invoice for the given
// day: paid when a payment date exists, otherwise overdue when the due date
// has passed, otherwise pending.
func DeriveStatus(inv Invoice, today Date) Status {
	if inv.Paid() {
		return StatusPaid
	}
	if inv.DueDate.Before(today) {
		return StatusOverdue
	}
	return StatusPending
}

// DeriveAgingText renders the human-readable aging description for an
// invoice: how early or late it was paid, or how far it is from its due
// date.
func DeriveAgingText(inv Invoice, today Date) string {
	if inv.Paid() {
		diff := DayDifference(inv.DueDate, *inv.PaymentDate)
		switch {
		case diff > 0:
			return fmt.Sprintf("Paid %d %s late", diff, dayWord(diff))
		case diff < 0:
			return fmt.Sprintf("Paid %d %s early", -diff, dayWord(-diff))
		default:
			return "Paid on time"
		}
	}

	diff := DayDifference(today, inv.DueDate)
	switch {
	case diff < 0:
		return fmt.Sprintf("Overdue by %d %s", -diff, dayWord(-diff))
	case diff == 0:
		return "Due today"
	default:
		return fmt.Sprintf("Due in %d %s", diff, dayWord(diff))
	}
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
