package invoicer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
	default:
		panic("unsupported type")
	}
}

// Amount represents an exact monetary value tied to a currency code.
// The value is kept unrounded; rounding happens only while formatting.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// A builds an Amount from any numeric value and a currency code.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

func (a Amount) Currency() string       { return a.cur }
func (a Amount) Value() decimal.Decimal { return a.value }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) Add(b Amount) Amount    { return Amount{value: a.value.Add(b.value), cur: a.cur} }
func (a Amount) Sub(b Amount) Amount    { return Amount{value: a.value.Sub(b.value), cur: a.cur} }

// currency returns the full go-money currency for the code.
func (a Amount) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency even for
	// unknown codes.
	return *money.New(0, a.cur).Currency()
}

// String renders the amount with the currency's own formatting rules
// (fraction digits, grapheme and placement).
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
