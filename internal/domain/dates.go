package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component, pinned to local
// midnight. The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf truncates t to its local calendar day, discarding time of day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string. Any other layout is an error; dates
// are never silently coerced.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Time() time.Time    { return d.t }
func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Compare returns -1, 0, or +1 ordering d against o.
func (d Date) Compare(o Date) int {
	switch {
	case d.t.Before(o.t):
		return -1
	case d.t.After(o.t):
		return 1
	default:
		return 0
	}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string. An empty string yields the zero
// Date; JSON null on a *Date field never reaches this method.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayDifference returns the signed number of whole calendar days from a to b
// (b minus a). Two datetimes on the same calendar day always yield 0 since
// both endpoints are already midnight-normalized.
func DayDifference(a, b Date) int {
	// Rounding absorbs the odd-length days DST introduces.
	return int(math.Round(b.t.Sub(a.t).Hours() / 24))
}

// AddDays returns the calendar date n days after d. n may be negative.
func AddDays(d Date, n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

// ErrNegativeTerms is returned when a due-date computation receives negative
// payment terms.
var ErrNegativeTerms = errors.New("payment terms must not be negative")

// ComputeDueDate returns invoiceDate + termsDays calendar days.
func ComputeDueDate(invoiceDate Date, termsDays int) (Date, error) {
	if invoiceDate.IsZero() {
		return Date{}, errors.New("invoice date is required")
	}
	if termsDays < 0 {
		return Date{}, ErrNegativeTerms
	}
	return AddDays(invoiceDate, termsDays), nil
}
