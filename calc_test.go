package invoicer

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemTotal_NoDiscount(t *testing.T) {
	it := item("consulting", 1, 100, 0, true)
	if got := ItemTotal(it); !got.Equal(D(100)) {
		t.Errorf("ItemTotal() = %s, want 100", got)
	}
}

func TestItemDiscount_SplitsSubtotalExactly(t *testing.T) {
	// For any discount d, discount amount and post-discount total must
	// recompose the subtotal exactly, with no rounding residue.
	for _, d := range []float64{0, 0.5, 7, 10, 33.33, 50, 99.99, 100} {
		it := item("widget", 3, 19.99, d, true)
		sub := ItemSubtotal(it)
		disc := ItemDiscountAmount(it)
		total := ItemTotal(it)
		if !disc.Add(total).Equal(sub) {
			t.Errorf("discount=%v: %s + %s != %s", d, disc, total, sub)
		}
		want := sub.Mul(D(100).Sub(D(d))).Shift(-2)
		if !total.Equal(want) {
			t.Errorf("discount=%v: ItemTotal() = %s, want %s", d, total, want)
		}
	}
}

func TestInvoiceSubtotal_OrderIndependent(t *testing.T) {
	items := []InvoiceItem{
		item("a", 2, 50, 10, true),
		item("b", 1, 20, 0, false),
		item("c", 7, 3.33, 25, true),
		item("d", 4, 0.05, 100, false),
	}
	want := InvoiceSubtotal(items)

	shuffled := append([]InvoiceItem(nil), items...)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if got := InvoiceSubtotal(shuffled); !got.Equal(want) {
			t.Fatalf("InvoiceSubtotal depends on item order: %s != %s", got, want)
		}
	}
}

func TestTaxAmount_TaxableItemsOnly(t *testing.T) {
	items := []InvoiceItem{
		item("untaxed", 1, 100, 0, false),
		item("taxed", 1, 50, 0, true),
	}
	if got := TaxAmount(items, D(10)); !got.Equal(D(5)) {
		t.Errorf("TaxAmount() = %s, want 5 (tax base excludes non-taxable items)", got)
	}
}

func TestInvoiceTotal_IsSubtotalPlusTax(t *testing.T) {
	items := []InvoiceItem{
		item("a", 2, 50, 10, true),
		item("b", 1, 20, 0, false),
		item("c", 3, 9.99, 5, true),
	}
	for _, rate := range []float64{0, 1, 7.7, 19, 20, 100} {
		inv := Invoice{Items: items, TaxRate: D(rate)}
		want := InvoiceSubtotal(items).Add(TaxAmount(items, D(rate)))
		if got := InvoiceTotal(inv); !got.Equal(want) {
			t.Errorf("rate=%v: InvoiceTotal() = %s, want %s", rate, got, want)
		}
	}
}

func TestComputeTotals_Scenario(t *testing.T) {
	// Two items, 20% tax on the taxable one only.
	it1 := item("design", 2, 50, 10, true)
	it2 := item("stock photo", 1, 20, 0, false)
	inv := Invoice{Items: []InvoiceItem{it1, it2}, TaxRate: D(20)}

	if got := ItemSubtotal(it1); !got.Equal(D(100)) {
		t.Errorf("item1 subtotal = %s, want 100", got)
	}
	if got := ItemDiscountAmount(it1); !got.Equal(D(10)) {
		t.Errorf("item1 discount = %s, want 10", got)
	}
	if got := ItemTotal(it1); !got.Equal(D(90)) {
		t.Errorf("item1 total = %s, want 90", got)
	}
	if got := ItemTotal(it2); !got.Equal(D(20)) {
		t.Errorf("item2 total = %s, want 20", got)
	}

	totals := ComputeTotals(inv)
	if !totals.Subtotal.Equal(D(110)) {
		t.Errorf("subtotal = %s, want 110", totals.Subtotal)
	}
	if !totals.Discount.Equal(D(10)) {
		t.Errorf("discount = %s, want 10", totals.Discount)
	}
	if !totals.Tax.Equal(D(18)) {
		t.Errorf("tax = %s, want 18 (90 × 0.20)", totals.Tax)
	}
	if !totals.Total.Equal(D(128)) {
		t.Errorf("total = %s, want 128", totals.Total)
	}
	if got := FormatAmount(totals.Total, "$"); got != "$128.00" {
		t.Errorf("FormatAmount(total) = %q, want $128.00", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		symbol string
		want   string
	}{
		{0, "$", "$0.00"},
		{128, "€", "€128.00"},
		{19.999, "£", "£20.00"},
		{10.005, "$", "$10.01"}, // half rounds away from zero
		{1234.5, "TND", "TND1234.50"},
	}
	for _, tc := range tests {
		if got := FormatAmount(decimal.NewFromFloat(tc.amount), tc.symbol); got != tc.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tc.amount, tc.symbol, got, tc.want)
		}
	}
}
