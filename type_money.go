package marketsim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount. Prices and balances carry no currency
// in the data files, the currency only matters when rendering.
type Money struct {
	value decimal.Decimal
}

// M returns Money from a numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal amount.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value)} }
func (m Money) Decimal() decimal.Decimal  { return m.value }
func (m Money) String() string            { return m.value.String() }
func (m Money) Fixed(places int32) string { return m.value.StringFixed(places) }

// AsFloat is only meant for display surfaces that cannot take a decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
