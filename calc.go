package invoicer

import "github.com/shopspring/decimal"

// The invoice calculator: pure, deterministic functions over an invoice
// and its line items. All arithmetic is exact decimal arithmetic; sums
// are never rounded between steps, only FormatAmount rounds, so
// rounding error cannot compound across items. Inputs are taken as-is
// (quantity ≥ 1, price ≥ 0, percentages in [0,100] are the caller's
// responsibility).

// ItemSubtotal returns quantity × pricePerUnit, before discount.
func ItemSubtotal(it InvoiceItem) decimal.Decimal {
	return decimal.NewFromInt(int64(it.Quantity)).Mul(it.PricePerUnit)
}

// ItemDiscountAmount returns the discounted part of the item subtotal.
func ItemDiscountAmount(it InvoiceItem) decimal.Decimal {
	// Shift(-2) divides by 100 exactly.
	return ItemSubtotal(it).Mul(it.Discount).Shift(-2)
}

// ItemTotal returns the item subtotal after discount.
func ItemTotal(it InvoiceItem) decimal.Decimal {
	return ItemSubtotal(it).Sub(ItemDiscountAmount(it))
}

// InvoiceSubtotal sums the post-discount totals of all items.
func InvoiceSubtotal(items []InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(ItemTotal(it))
	}
	return sum
}

// TotalDiscount sums the discount amounts of all items.
func TotalDiscount(items []InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(ItemDiscountAmount(it))
	}
	return sum
}

// TaxAmount computes the tax on the post-discount total of taxable
// items only. Non-taxable items contribute zero tax whatever the rate.
func TaxAmount(items []InvoiceItem, taxRate decimal.Decimal) decimal.Decimal {
	base := decimal.Zero
	for _, it := range items {
		if it.Taxable {
			base = base.Add(ItemTotal(it))
		}
	}
	return base.Mul(taxRate).Shift(-2)
}

// InvoiceTotal returns subtotal plus tax.
func InvoiceTotal(inv Invoice) decimal.Decimal {
	return InvoiceSubtotal(inv.Items).Add(TaxAmount(inv.Items, inv.TaxRate))
}

// Totals bundles every derived figure of an invoice, ready for display.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives all figures of an invoice in one pass.
func ComputeTotals(inv Invoice) Totals {
	return Totals{
		Subtotal: InvoiceSubtotal(inv.Items),
		Discount: TotalDiscount(inv.Items),
		Tax:      TaxAmount(inv.Items, inv.TaxRate),
		Total:    InvoiceTotal(inv),
	}
}

// FormatAmount renders an amount fixed to 2 decimal places, prefixed by
// the currency symbol. Rounding (half away from zero) happens here and
// only here.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}
