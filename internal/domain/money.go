package domain

// Money is an amount in whole rupees. Integer arithmetic keeps costs exact
// through JSON round-trips and proportional discounts.
type Money int64

// Scale multiplies the amount by an integer factor (party sizing).
func (m Money) Scale(n int) Money {
	return m * Money(n)
}

// Pct returns pct percent of the amount, truncated toward zero.
func (m Money) Pct(pct int) Money {
	return m * Money(pct) / 100
}
