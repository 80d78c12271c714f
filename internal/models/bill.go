package models

import "time"

// DateLayout is the wire and storage format for due dates.
const DateLayout = "2006-01-02"

// Bill represents a household expense shared among assigned roommates.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Name is the human-readable label (e.g., "Rent", "Wifi").
	Name string

	// Amount is the full bill amount. Always strictly positive.
	Amount float64

	// DueDate is optional. Only the calendar date is meaningful.
	DueDate *time.Time

	// IsActive is false once the bill has been removed.
	IsActive bool

	// CreatedAt is the Unix timestamp when the bill was added.
	CreatedAt int64
}

// DueDateString returns the due date formatted with DateLayout, or "" when unset.
func (b *Bill) DueDateString() string {
	if b.DueDate == nil {
		return ""
	}
	return b.DueDate.Format(DateLayout)
}

// ParseDueDate parses a YYYY-MM-DD string. An empty string yields nil.
func ParseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
