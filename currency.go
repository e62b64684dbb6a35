package invoicer

import "github.com/Rhymond/go-money"

// Currency is a selectable currency option. The code is the value
// stored on invoices; the symbol is only used when rendering amounts.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Currencies lists the currency options offered when creating an
// invoice, in display order.
var Currencies = []Currency{
	{"TND", "TND", "Tunisian Dinar"},
	{"USD", "$", "US Dollar"},
	{"EUR", "€", "Euro"},
	{"GBP", "£", "British Pound"},
	{"JPY", "¥", "Japanese Yen"},
	{"CAD", "C$", "Canadian Dollar"},
	{"AUD", "A$", "Australian Dollar"},
	{"CHF", "CHF", "Swiss Franc"},
	{"CNY", "¥", "Chinese Yuan"},
	{"INR", "₹", "Indian Rupee"},
}

// CurrencySymbol returns the display symbol for a currency code.
// Codes outside the options table fall back to the go-money currency
// registry, and finally to the code itself, so an unknown code still
// renders something sensible.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	if cur := money.GetCurrency(code); cur != nil {
		return cur.Grapheme
	}
	return code
}

// ValidCurrency reports whether code is one of the offered options.
func ValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
