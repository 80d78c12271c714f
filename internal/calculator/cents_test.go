package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		n      int
		want   []string
	}{
		{"even split", 1200, 2, []string{"600", "600"}},
		{"last absorbs remainder", 100, 3, []string{"33.33", "33.33", "33.34"}},
		{"leftover cents go to the last shares", 0.05, 3, []string{"0.01", "0.02", "0.02"}},
		{"more assignees than cents", 0.07, 9, []string{"0", "0", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01"}},
		{"single assignee", 19.99, 1, []string{"19.99"}},
		{"sub-cent amount rounds first", 10.005, 2, []string{"5", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCents(tt.amount, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitCents() returned %d shares, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if !got[i].Equal(decimal.RequireFromString(w)) {
					t.Errorf("share[%d] = %s, want %s", i, got[i], w)
				}
			}
		})
	}
}

func TestSplitCents_SumsExactly(t *testing.T) {
	for _, amount := range []float64{0.01, 1, 10, 33.33, 90, 1234.57} {
		for n := 1; n <= 120; n++ {
			shares := SplitCents(amount, n)
			sum := decimal.Zero
			for i, s := range shares {
				if s.IsNegative() {
					t.Errorf("SplitCents(%v, %d)[%d] = %s, want >= 0", amount, n, i, s)
				}
				if d := s.Sub(shares[0]); d.IsNegative() || d.GreaterThan(decimal.New(1, -2)) {
					t.Errorf("SplitCents(%v, %d)[%d] = %s, differs from %s by more than a cent", amount, n, i, s, shares[0])
				}
				sum = sum.Add(s)
			}
			want := decimal.NewFromFloat(amount).RoundBank(2)
			if !sum.Equal(want) {
				t.Errorf("SplitCents(%v, %d) sums to %s, want %s", amount, n, sum, want)
			}
		}
	}
}

func TestSplitCents_ManyAssignees(t *testing.T) {
	shares := SplitCents(1, 60)
	if len(shares) != 60 {
		t.Fatalf("SplitCents(1, 60) returned %d shares, want 60", len(shares))
	}
	var ones, twos int
	for i, s := range shares {
		switch {
		case s.Equal(decimal.RequireFromString("0.01")):
			ones++
		case s.Equal(decimal.RequireFromString("0.02")):
			twos++
			if i < 20 {
				t.Errorf("share[%d] = 0.02, want leftover cents at the end", i)
			}
		default:
			t.Errorf("share[%d] = %s, want 0.01 or 0.02", i, s)
		}
	}
	if ones != 20 || twos != 40 {
		t.Errorf("got %d x 0.01 and %d x 0.02, want 20 and 40", ones, twos)
	}
}

func TestSplitCents_NoAssignees(t *testing.T) {
	if got := SplitCents(100, 0); got != nil {
		t.Errorf("SplitCents(100, 0) = %v, want nil", got)
	}
}
