package fintrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents a monetary value on the dashboard.
//
// Amounts are kept as exact decimals so that repeated aggregation never
// accumulates binary floating point noise. The dashboard has a single
// display currency; an Amount itself is currency-agnostic.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from any common numeric type.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a decimal string like "1234.56" into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }
func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }

// MulInt scales the amount by an integer factor, used by balance projections.
func (a Amount) MulInt(n int) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(int64(n)))}
}

// Ratio returns a/b as a float64. It is only meant for display heuristics
// (safety ratios), where exactness does not matter anymore.
func (a Amount) Ratio(b Amount) float64 {
	if b.value.IsZero() {
		b = A(1)
	}
	return a.value.Div(b.value).InexactFloat64()
}

// Float64 returns the closest float64 to the amount.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// String returns the plain decimal representation, e.g. "1234.56".
func (a Amount) String() string { return a.value.String() }

// Display formats the amount in the given ISO currency, e.g. "$1,234.56".
func (a Amount) Display(currency string) string {
	cur := money.New(0, currency).Currency()
	units := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(units.IntPart())
}

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON decodes a JSON number (or numeric string) into the amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = d
	return nil
}
