package invoicer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CompanyInfo is the business profile of the installation. It is a
// singleton: no id, one record, overwritten wholesale on save.
type CompanyInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	BankName string `json:"bankName,omitempty"`
	IBAN     string `json:"iban,omitempty"`
	SWIFT    string `json:"swift,omitempty"`
}

// Client is a customer that invoices can be billed to.
//
// ID is immutable once assigned, and CreatedAt is set once at creation
// and never updated. Invoices hold a soft reference to a client id:
// deleting a client does not cascade, and a dangling reference simply
// resolves to no client.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}

// SavedItem is a reusable template for invoice line items, independent
// of any invoice.
type SavedItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	CreatedAt    string          `json:"createdAt"`
}

// InvoiceItem is a line item embedded inside an Invoice, never stored
// standalone. Discount is a percentage in [0,100]. The calculator does
// not validate ranges; callers clamp inputs before construction.
type InvoiceItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Discount     decimal.Decimal `json:"discount"`
	Taxable      bool            `json:"taxable"`
}

// Invoice is a bill issued to a client.
//
// InvoiceNumber is assigned once at creation from the installation-wide
// counter and never reused or renumbered. ClientID is a soft reference
// (see Client). Currency is a label, never a conversion factor. TaxRate
// is a flat percentage in [0,100] applied to taxable items only.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientId"`
	Currency      string          `json:"currency"`
	Note          string          `json:"note"`
	Items         []InvoiceItem   `json:"items"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	IsPaid        bool            `json:"isPaid"`
	DueDate       DueDate         `json:"dueDate"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// DueDate is the payment-term option attached to an invoice.
type DueDate string

const (
	// DueNone leaves the invoice without a payment condition.
	DueNone DueDate = "none"
	// DueOnReceipt makes payment due on receipt of the invoice.
	DueOnReceipt DueDate = "receipt"
	// DueIn10Days makes payment due 10 days after issue.
	DueIn10Days DueDate = "10"
	// DueIn15Days makes payment due 15 days after issue.
	DueIn15Days DueDate = "15"
	// DueIn30Days makes payment due 30 days after issue.
	DueIn30Days DueDate = "30"
)

// ParseDueDate parses a string into a DueDate.
func ParseDueDate(s string) (DueDate, error) {
	switch DueDate(s) {
	case DueNone, DueOnReceipt, DueIn10Days, DueIn15Days, DueIn30Days:
		return DueDate(s), nil
	default:
		return DueNone, fmt.Errorf("unknown due date option: %q (want none, receipt, 10, 15 or 30)", s)
	}
}

func (d DueDate) String() string { return string(d) }

// Days returns the number of days until payment is due, and whether a
// day count applies at all (it does not for none and receipt).
func (d DueDate) Days() (int, bool) {
	switch d {
	case DueIn10Days:
		return 10, true
	case DueIn15Days:
		return 15, true
	case DueIn30Days:
		return 30, true
	default:
		return 0, false
	}
}
