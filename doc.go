// Package invoicer provides the core of a local-first invoicing tool
// for a single user: a business profile, a client list, reusable line
// items, and invoices, persisted in a simple key-value storage area on
// the local device.
//
// The core functionalities include:
//   - Ledger Store: durable, synchronous persistence for the four
//     record collections (Clients, Invoices, SavedItems, CompanyInfo)
//     plus the monotonic invoice-number counter, with upsert-by-id
//     semantics and no enforced referential integrity.
//   - Invoice Calculator: pure functions deriving subtotal, discount,
//     tax, and total from an invoice's line items and tax rate, using
//     exact decimal arithmetic, rounded only at display time.
//   - Identifier and invoice-number generation.
//
// This package serves as the foundational logic for the `inv`
// command-line tool; document rendering lives in the renderer package
// and only ever consumes plain records and computed amounts from here.
package invoicer
