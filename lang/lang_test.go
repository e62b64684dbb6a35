package lang

import "testing"

func TestFor(t *testing.T) {
	if got := For("fr").Invoice; got != "FACTURE" {
		t.Errorf("For(fr).Invoice = %q", got)
	}
	if got := For("en").Invoice; got != "INVOICE" {
		t.Errorf("For(en).Invoice = %q", got)
	}
	// unknown codes fall back to English rather than failing.
	if got := For("de").Invoice; got != "INVOICE" {
		t.Errorf("For(de).Invoice = %q, want English fallback", got)
	}
}

func TestTablesComplete(t *testing.T) {
	// every supported language must fill every string.
	for _, code := range Supported() {
		tb := For(code)
		for _, s := range []string{
			tb.Invoice, tb.Issued, tb.From, tb.BillTo, tb.Description,
			tb.Qty, tb.UnitPrice, tb.Amount, tb.NoItems, tb.Subtotal,
			tb.Discount, tb.Tax, tb.Total, tb.Notes,
			tb.AuthorizedSignature, tb.NoClientSelected, tb.Receipt,
			tb.PaymentReceipt, tb.ReceivedFrom, tb.PaidDate,
			tb.PaymentFor, tb.AmountPaid, tb.ThankYou, tb.PaidInFull,
			tb.ReceiptNumber, tb.PaymentConditions, tb.PaymentDueReceipt,
			tb.PaymentDue10Days, tb.PaymentDue15Days, tb.PaymentDue30Days,
		} {
			if s == "" {
				t.Fatalf("language %q has an empty string in its table", code)
			}
		}
	}
}
