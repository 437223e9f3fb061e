package domain

import "github.com/shopspring/decimal"

// Summary holds the portfolio-level cash-flow figures for one filtered view.
type Summary struct {
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
	TotalOverdue       decimal.Decimal `json:"totalOverdue"`
	TotalPaidThisMonth decimal.Decimal `json:"totalPaidThisMonth"`
	AvgPaymentDelay    decimal.Decimal `json:"avgPaymentDelay"`
}

// Summarize computes totals and the average payment delay in a single pass.
// Outstanding covers pending and overdue invoices; paid-this-month matches
// payment dates in today's calendar month and year. The average delay is
// rounded to one decimal place half away from zero, and is exactly zero when
// nothing has been paid.
func Summarize(views []InvoiceView, today Date) Summary {
	s := Summary{
		TotalOutstanding:   decimal.Zero,
		TotalOverdue:       decimal.Zero,
		TotalPaidThisMonth: decimal.Zero,
		AvgPaymentDelay:    decimal.Zero,
	}

	var delaySum, paidCount int64
	for _, v := range views {
		switch v.Status {
		case StatusPending:
			s.TotalOutstanding = s.TotalOutstanding.Add(v.Amount)
		case StatusOverdue:
			s.TotalOutstanding = s.TotalOutstanding.Add(v.Amount)
			s.TotalOverdue = s.TotalOverdue.Add(v.Amount)
		}

		if v.Paid() {
			paid := *v.PaymentDate
			if paid.Year() == today.Year() && paid.Month() == today.Month() {
				s.TotalPaidThisMonth = s.TotalPaidThisMonth.Add(v.Amount)
			}
			delaySum += int64(DayDifference(v.DueDate, paid))
			paidCount++
		}
	}

	if paidCount > 0 {
		s.AvgPaymentDelay = decimal.NewFromInt(delaySum).
			Div(decimal.NewFromInt(paidCount)).
			Round(1)
	}
	return s
}
