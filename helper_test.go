package invoicer

import (
	"time"

	"github.com/shopspring/decimal"
)

// D is a helper for tests to build a decimal from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// item is a helper for tests to build a line item from consts.
func item(name string, qty int, price, discount float64, taxable bool) InvoiceItem {
	return InvoiceItem{
		ID:           NewID(),
		Name:         name,
		Quantity:     qty,
		PricePerUnit: D(price),
		Discount:     D(discount),
		Taxable:      taxable,
	}
}

// tick is a fake clock advancing one second per call.
func tick() func() time.Time {
	t := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// newTestStore returns a store over an in-memory KV with a
// deterministic clock.
func newTestStore() *Store {
	s := NewStore(NewMemKV())
	s.now = tick()
	return s
}
