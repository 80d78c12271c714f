package calculator

import "github.com/shopspring/decimal"

// SplitCents divides amount into n shares of whole cents.
//
// amount is first rounded half-to-even to cents. Every share gets the
// floor of amount/n; the leftover cents (fewer than n) go one each to the
// last shares, so shares differ by at most one cent, are never negative,
// and add up to the rounded amount. Returns nil when n <= 0.
func SplitCents(amount float64, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	cents := decimal.NewFromFloat(amount).RoundBank(2).Shift(2).IntPart()
	base, leftover := cents/int64(n), cents%int64(n)

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		c := base
		if int64(i) >= int64(n)-leftover {
			c++
		}
		shares[i] = decimal.New(c, -2)
	}
	return shares
}
