package invoicer

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// persist decimals as plain JSON numbers, the shape the records
	// always had on disk.
	decimal.MarshalJSONWithoutQuotes = true
}

// Storage keys, one independent entry per collection within the
// key-value namespace plus the invoice-number counter.
const (
	keyClients     = "clients"
	keyInvoices    = "invoices"
	keySavedItems  = "saved-items"
	keyCounter     = "invoice-counter"
	keyCompanyInfo = "company-info"
)

// Store is the Ledger Store: it owns the Clients, Invoices, SavedItems
// and CompanyInfo collections inside a single KV namespace.
//
// Mutations are whole-record replace-by-id: Save never merges fields,
// callers read-modify-write and carry forward whatever must survive an
// edit (notably an invoice's createdAt). There are no transactions
// across collections; each save serializes and writes one collection in
// a single synchronous Set.
type Store struct {
	kv  KV
	now func() time.Time
}

// NewStore creates a Store over the given persistence area.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Timestamp returns the current wall-clock time in the RFC3339 UTC form
// used for createdAt and updatedAt stamps.
func (s *Store) Timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// record is implemented by every collection record with an id.
type record interface {
	recordID() string
}

func (c Client) recordID() string    { return c.ID }
func (i Invoice) recordID() string   { return i.ID }
func (i SavedItem) recordID() string { return i.ID }

// decodeList reads a whole collection. An absent key yields an empty
// collection; so does a malformed one, by policy, with a logged
// warning rather than a silent swallow (the next save overwrites it).
func decodeList[T record](kv KV, key string) []T {
	b, ok := kv.Get(key)
	if !ok {
		return nil
	}
	var list []T
	if err := json.Unmarshal(b, &list); err != nil {
		log.Printf("warning: could not decode %q, treating it as empty: %v", key, err)
		return nil
	}
	return list
}

func encodeList[T record](kv KV, key string, list []T) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	return kv.Set(key, b)
}

// findRecord scans a collection for an id. Ids are unique, so the first
// match is the only match.
func findRecord[T record](kv KV, key, id string) *T {
	for _, r := range decodeList[T](kv, key) {
		if r.recordID() == id {
			return &r
		}
	}
	return nil
}

// saveRecord upserts: a record with a known id replaces the stored one
// in place, keeping its position in the sequence; a new id appends.
func saveRecord[T record](kv KV, key string, rec T) error {
	list := decodeList[T](kv, key)
	for i := range list {
		if list[i].recordID() == rec.recordID() {
			list[i] = rec
			return encodeList(kv, key, list)
		}
	}
	return encodeList(kv, key, append(list, rec))
}

// deleteRecord removes a record by id. A missing id is a no-op.
func deleteRecord[T record](kv KV, key, id string) error {
	list := decodeList[T](kv, key)
	kept := slices.DeleteFunc(list, func(r T) bool { return r.recordID() == id })
	return encodeList(kv, key, kept)
}

// Clients returns all clients in storage order.
func (s *Store) Clients() []Client { return decodeList[Client](s.kv, keyClients) }

// Client resolves a client id, or nil if absent. This is the resolver
// for the soft references invoices carry: a dangling clientId resolves
// to nil, never to an error.
func (s *Store) Client(id string) *Client { return findRecord[Client](s.kv, keyClients, id) }

// SaveClient upserts a client.
func (s *Store) SaveClient(c Client) error { return saveRecord(s.kv, keyClients, c) }

// DeleteClient removes a client. Invoices referencing it keep their
// stale clientId; there is no cascade.
func (s *Store) DeleteClient(id string) error { return deleteRecord[Client](s.kv, keyClients, id) }

// SavedItems returns all saved items in storage order.
func (s *Store) SavedItems() []SavedItem { return decodeList[SavedItem](s.kv, keySavedItems) }

// SavedItem returns the saved item with this id, or nil.
func (s *Store) SavedItem(id string) *SavedItem {
	return findRecord[SavedItem](s.kv, keySavedItems, id)
}

// SaveItem upserts a saved item.
func (s *Store) SaveItem(it SavedItem) error { return saveRecord(s.kv, keySavedItems, it) }

// DeleteSavedItem removes a saved item.
func (s *Store) DeleteSavedItem(id string) error {
	return deleteRecord[SavedItem](s.kv, keySavedItems, id)
}

// Invoices returns all invoices in storage order.
func (s *Store) Invoices() []Invoice { return decodeList[Invoice](s.kv, keyInvoices) }

// Invoice returns the invoice with this id, or nil.
func (s *Store) Invoice(id string) *Invoice { return findRecord[Invoice](s.kv, keyInvoices, id) }

// SaveInvoice upserts an invoice. It always stamps updatedAt with the
// current time, whatever the caller set; createdAt passes through
// untouched, so the caller must carry the original forward on edit.
func (s *Store) SaveInvoice(inv Invoice) error {
	inv.UpdatedAt = s.Timestamp()
	return saveRecord(s.kv, keyInvoices, inv)
}

// DeleteInvoice removes an invoice.
func (s *Store) DeleteInvoice(id string) error { return deleteRecord[Invoice](s.kv, keyInvoices, id) }

// ToggleInvoicePaid flips the isPaid flag of an invoice and stamps
// updatedAt. It returns the updated record, or nil if the id does not
// exist.
func (s *Store) ToggleInvoicePaid(id string) (*Invoice, error) {
	inv := s.Invoice(id)
	if inv == nil {
		return nil, nil
	}
	inv.IsPaid = !inv.IsPaid
	if err := s.SaveInvoice(*inv); err != nil {
		return nil, err
	}
	return s.Invoice(id), nil
}

// CompanyInfo returns the business profile, a blank one when none has
// been saved yet.
func (s *Store) CompanyInfo() CompanyInfo {
	b, ok := s.kv.Get(keyCompanyInfo)
	if !ok {
		return CompanyInfo{}
	}
	var info CompanyInfo
	if err := json.Unmarshal(b, &info); err != nil {
		log.Printf("warning: could not decode %q, treating it as empty: %v", keyCompanyInfo, err)
		return CompanyInfo{}
	}
	return info
}

// SaveCompanyInfo overwrites the business profile wholesale.
func (s *Store) SaveCompanyInfo(info CompanyInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", keyCompanyInfo, err)
	}
	return s.kv.Set(keyCompanyInfo, b)
}

// NextInvoiceNumber increments the installation-wide counter, persists
// it, and returns the display number. Calling it consumes a counter
// value for good: an invoice that is never saved still leaves a gap.
// Numbers are never reused and never renumbered on edit.
func (s *Store) NextInvoiceNumber() (string, error) {
	n := 0
	if b, ok := s.kv.Get(keyCounter); ok {
		v, err := strconv.Atoi(strings.TrimSpace(string(b)))
		if err != nil {
			log.Printf("warning: could not decode %q, restarting from zero: %v", keyCounter, err)
		} else {
			n = v
		}
	}
	n++
	if err := s.kv.Set(keyCounter, []byte(strconv.Itoa(n))); err != nil {
		return "", err
	}
	return FormatInvoiceNumber(n), nil
}

// FormatInvoiceNumber renders a counter value as a display number,
// zero-padded to 4 digits and widening past 9999 (padding never
// truncates).
func FormatInvoiceNumber(n int) string {
	return fmt.Sprintf("INV-%04d", n)
}
