package core

import (
	"errors"
	"time"
)

type (
	// Date is a calendar date with no time-of-day component. Sales are
	// bucketed by Date, never by CreatedAt.
	Date struct {
		time.Time
	}

	// Sale is one recorded revenue event. Records are immutable after
	// creation; the ledger only ever adds and deletes them.
	Sale struct {
		ID          string
		Value       Money
		Source      Source
		Description string
		Date        Date
		CreatedAt   time.Time
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidSource = errors.New("invalid sale source")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyID       = errors.New("empty sale id")
)

// DateLayout is the wire format for sale dates, matching the snapshot schema.
const DateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day. The time-of-day is zeroed
// and the location normalized to UTC so two dates compare by calendar day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a date string in the snapshot wire format (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the date in the snapshot wire format.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// MarshalJSON encodes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "2006-01-02" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate checks the invariants a sale must hold before it enters the
// ledger: a present id, a strictly positive value, a known source tag and a
// real calendar date.
func (s Sale) Validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if err := s.Value.Validate(); err != nil {
		return err
	}
	if err := s.Source.Validate(); err != nil {
		return err
	}
	return s.Date.Validate()
}
