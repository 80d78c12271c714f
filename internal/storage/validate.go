package storage

import (
	"math"
	"strings"
	"time"

	"github.com/mmynk/housesplit/internal/models"
)

// NormalizeRoommate trims the roommate name and rejects empty names.
func NormalizeRoommate(r *models.Roommate) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	return nil
}

// NormalizeBill trims the bill name and checks the amount.
func NormalizeBill(b *models.Bill) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return &ValidationError{Field: "amount", Reason: "amount must be a finite number"}
	}
	if b.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "amount must be greater than zero"}
	}
	return nil
}

// ParseDueDate parses an optional YYYY-MM-DD due date supplied by a caller.
func ParseDueDate(s string) (*time.Time, error) {
	due, err := models.ParseDueDate(strings.TrimSpace(s))
	if err != nil {
		return nil, &ValidationError{Field: "due_date", Reason: "expected YYYY-MM-DD"}
	}
	return due, nil
}
