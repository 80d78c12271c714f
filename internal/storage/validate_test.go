package storage

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/housesplit/internal/models"
)

func TestNormalizeBill(t *testing.T) {
	tests := []struct {
		name      string
		bill      models.Bill
		wantField string
	}{
		{"valid", models.Bill{Name: " Rent ", Amount: 1200}, ""},
		{"blank name", models.Bill{Name: "  ", Amount: 10}, "name"},
		{"zero amount", models.Bill{Name: "Gym", Amount: 0}, "amount"},
		{"negative amount", models.Bill{Name: "Groceries", Amount: -5}, "amount"},
		{"NaN amount", models.Bill{Name: "Power", Amount: math.NaN()}, "amount"},
		{"infinite amount", models.Bill{Name: "Power", Amount: math.Inf(1)}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.bill
			err := NormalizeBill(&b)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if b.Name != "Rent" {
					t.Errorf("Name = %q, want trimmed", b.Name)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("")
	if err != nil || due != nil {
		t.Errorf("ParseDueDate(\"\") = %v, %v; want nil, nil", due, err)
	}

	due, err = ParseDueDate(" 2026-11-01 ")
	if err != nil {
		t.Fatalf("ParseDueDate failed: %v", err)
	}
	if due.Format(models.DateLayout) != "2026-11-01" {
		t.Errorf("due = %v", due)
	}

	if _, err := ParseDueDate("11/01/2026"); !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestWrap(t *testing.T) {
	if Wrap("op", nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}

	nf := &NotFoundError{Entity: "bill", ID: "b1"}
	if got := Wrap("op", nf); got != error(nf) {
		t.Errorf("Wrap should pass NotFoundError through, got %v", got)
	}

	driverErr := errors.New("disk I/O error")
	wrapped := Wrap("insert bill", driverErr)
	var se *StorageError
	if !errors.As(wrapped, &se) || se.Op != "insert bill" {
		t.Fatalf("Wrap = %v, want StorageError", wrapped)
	}
	if !errors.Is(wrapped, driverErr) {
		t.Error("StorageError should unwrap to the driver error")
	}
	if Wrap("again", wrapped) != wrapped {
		t.Error("Wrap should not double-wrap a StorageError")
	}
}
