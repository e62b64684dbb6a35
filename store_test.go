package invoicer

import (
	"reflect"
	"testing"
)

func TestStore_ClientRoundTrip(t *testing.T) {
	s := newTestStore()
	c := Client{
		ID:        NewID(),
		Name:      "Acme",
		Email:     "billing@acme.example",
		Phone:     "+216 71 000 000",
		Address:   "1 Rue de Carthage, Tunis",
		CreatedAt: s.Timestamp(),
	}
	if err := s.SaveClient(c); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	got := s.Client(c.ID)
	if got == nil {
		t.Fatal("Client() returned nil after save")
	}
	if !reflect.DeepEqual(*got, c) {
		t.Errorf("Client() = %+v, want %+v", *got, c)
	}
}

func TestStore_SavedItemRoundTrip(t *testing.T) {
	s := newTestStore()
	it := SavedItem{ID: NewID(), Name: "Day rate", DefaultPrice: D(650), CreatedAt: s.Timestamp()}
	if err := s.SaveItem(it); err != nil {
		t.Fatalf("SaveItem: %v", err)
	}
	got := s.SavedItem(it.ID)
	if got == nil {
		t.Fatal("SavedItem() returned nil after save")
	}
	if got.ID != it.ID || got.Name != it.Name || !got.DefaultPrice.Equal(it.DefaultPrice) || got.CreatedAt != it.CreatedAt {
		t.Errorf("SavedItem() = %+v, want %+v", *got, it)
	}
}

func TestStore_InvoiceRoundTrip(t *testing.T) {
	s := newTestStore()
	inv := Invoice{
		ID:            NewID(),
		InvoiceNumber: FormatInvoiceNumber(1),
		ClientID:      "some-client",
		Currency:      "EUR",
		Note:          "net terms",
		Items:         []InvoiceItem{item("design", 2, 50, 10, true)},
		TaxRate:       D(20),
		DueDate:       DueIn30Days,
		CreatedAt:     s.Timestamp(),
	}
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatalf("SaveInvoice: %v", err)
	}
	got := s.Invoice(inv.ID)
	if got == nil {
		t.Fatal("Invoice() returned nil after save")
	}
	if got.UpdatedAt == "" {
		t.Error("SaveInvoice did not stamp updatedAt")
	}
	if got.CreatedAt != inv.CreatedAt {
		t.Errorf("SaveInvoice changed createdAt: %q -> %q", inv.CreatedAt, got.CreatedAt)
	}
	if got.InvoiceNumber != inv.InvoiceNumber || got.ClientID != inv.ClientID || len(got.Items) != 1 {
		t.Errorf("Invoice() = %+v, want %+v", *got, inv)
	}
}

func TestStore_UpsertReplacesInPlace(t *testing.T) {
	s := newTestStore()
	a := Client{ID: "a", Name: "First", CreatedAt: s.Timestamp()}
	b := Client{ID: "b", Name: "Second", CreatedAt: s.Timestamp()}
	for _, c := range []Client{a, b} {
		if err := s.SaveClient(c); err != nil {
			t.Fatalf("SaveClient: %v", err)
		}
	}

	a.Name = "First, renamed"
	if err := s.SaveClient(a); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}

	clients := s.Clients()
	if len(clients) != 2 {
		t.Fatalf("len(Clients()) = %d, want 2 (upsert must not append a duplicate)", len(clients))
	}
	if clients[0].ID != "a" || clients[0].Name != "First, renamed" {
		t.Errorf("record lost its position or content: %+v", clients[0])
	}
	if clients[1].ID != "b" {
		t.Errorf("unrelated record moved: %+v", clients[1])
	}
}

func TestStore_UpsertIdempotence_InvoiceUpdatedAtAdvances(t *testing.T) {
	s := newTestStore()
	inv := Invoice{ID: "i1", InvoiceNumber: "INV-0001", Currency: "USD", CreatedAt: s.Timestamp()}
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatalf("SaveInvoice: %v", err)
	}
	first := s.Invoice("i1")

	// Same id, same content: the collection length must not change and
	// the record must be unchanged except updatedAt advancing.
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatalf("SaveInvoice: %v", err)
	}
	second := s.Invoice("i1")

	if n := len(s.Invoices()); n != 1 {
		t.Fatalf("len(Invoices()) = %d, want 1", n)
	}
	if second.UpdatedAt <= first.UpdatedAt {
		t.Errorf("updatedAt did not advance: %q then %q", first.UpdatedAt, second.UpdatedAt)
	}
	second.UpdatedAt = first.UpdatedAt
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-saving identical content changed the record:\n%+v\n%+v", first, second)
	}
}

func TestStore_DeleteMissingIsNoOp(t *testing.T) {
	s := newTestStore()
	if err := s.SaveClient(Client{ID: "keep", Name: "Keeper"}); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	if err := s.DeleteClient("missing-id"); err != nil {
		t.Fatalf("DeleteClient(missing) returned error: %v", err)
	}
	if n := len(s.Clients()); n != 1 {
		t.Errorf("len(Clients()) = %d, want 1", n)
	}
	if err := s.DeleteInvoice("missing-id"); err != nil {
		t.Fatalf("DeleteInvoice(missing) returned error: %v", err)
	}
	if err := s.DeleteSavedItem("missing-id"); err != nil {
		t.Fatalf("DeleteSavedItem(missing) returned error: %v", err)
	}
}

func TestStore_DeleteClientLeavesDanglingReference(t *testing.T) {
	s := newTestStore()
	c := Client{ID: "c1", Name: "Gone Soon"}
	if err := s.SaveClient(c); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	inv := Invoice{ID: "i1", InvoiceNumber: "INV-0001", ClientID: "c1"}
	if err := s.SaveInvoice(inv); err != nil {
		t.Fatalf("SaveInvoice: %v", err)
	}

	if err := s.DeleteClient("c1"); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	got := s.Invoice("i1")
	if got.ClientID != "c1" {
		t.Errorf("deletion cascaded into the invoice: clientId = %q", got.ClientID)
	}
	if s.Client("c1") != nil {
		t.Error("dangling reference resolved to a client")
	}
}

func TestStore_ToggleInvoicePaid(t *testing.T) {
	s := newTestStore()
	if err := s.SaveInvoice(Invoice{ID: "i1", InvoiceNumber: "INV-0001"}); err != nil {
		t.Fatalf("SaveInvoice: %v", err)
	}
	before := s.Invoice("i1")

	got, err := s.ToggleInvoicePaid("i1")
	if err != nil {
		t.Fatalf("ToggleInvoicePaid: %v", err)
	}
	if got == nil || !got.IsPaid {
		t.Fatalf("ToggleInvoicePaid() = %+v, want isPaid=true", got)
	}
	if got.UpdatedAt <= before.UpdatedAt {
		t.Error("toggle did not stamp updatedAt")
	}

	got, err = s.ToggleInvoicePaid("i1")
	if err != nil {
		t.Fatalf("ToggleInvoicePaid: %v", err)
	}
	if got.IsPaid {
		t.Error("second toggle did not flip back to unpaid")
	}

	got, err = s.ToggleInvoicePaid("missing-id")
	if err != nil || got != nil {
		t.Errorf("ToggleInvoicePaid(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestStore_CompanyInfo(t *testing.T) {
	s := newTestStore()
	if got := s.CompanyInfo(); got != (CompanyInfo{}) {
		t.Errorf("CompanyInfo() before save = %+v, want zero", got)
	}
	info := CompanyInfo{Name: "Studio Z", Email: "hello@studioz.example", BankName: "BIAT", IBAN: "TN59"}
	if err := s.SaveCompanyInfo(info); err != nil {
		t.Fatalf("SaveCompanyInfo: %v", err)
	}
	if got := s.CompanyInfo(); got != info {
		t.Errorf("CompanyInfo() = %+v, want %+v", got, info)
	}
	// save is a full overwrite, not a merge.
	if err := s.SaveCompanyInfo(CompanyInfo{Name: "Studio Z"}); err != nil {
		t.Fatalf("SaveCompanyInfo: %v", err)
	}
	if got := s.CompanyInfo(); got.IBAN != "" {
		t.Errorf("SaveCompanyInfo merged instead of overwriting: %+v", got)
	}
}

func TestStore_InvoiceNumbering(t *testing.T) {
	s := newTestStore()
	for i, want := range []string{"INV-0001", "INV-0002", "INV-0003"} {
		got, err := s.NextInvoiceNumber()
		if err != nil {
			t.Fatalf("NextInvoiceNumber: %v", err)
		}
		if got != want {
			t.Errorf("call %d: NextInvoiceNumber() = %q, want %q", i+1, got, want)
		}
	}
}

func TestStore_InvoiceNumberWidensPast9999(t *testing.T) {
	s := newTestStore()
	if err := s.kv.Set(keyCounter, []byte("9999")); err != nil {
		t.Fatal(err)
	}
	got, err := s.NextInvoiceNumber()
	if err != nil {
		t.Fatalf("NextInvoiceNumber: %v", err)
	}
	if got != "INV-10000" {
		t.Errorf("NextInvoiceNumber() = %q, want INV-10000 (padding never truncates)", got)
	}
}

func TestStore_CounterSurvivesReopen(t *testing.T) {
	kv := NewMemKV()
	s := NewStore(kv)
	if _, err := s.NextInvoiceNumber(); err != nil {
		t.Fatal(err)
	}
	// a new Store over the same KV continues the sequence: the counter
	// is installation-wide, not per-process.
	got, err := NewStore(kv).NextInvoiceNumber()
	if err != nil {
		t.Fatal(err)
	}
	if got != "INV-0002" {
		t.Errorf("NextInvoiceNumber() after reopen = %q, want INV-0002", got)
	}
}

func TestStore_MalformedCollectionReadsAsEmpty(t *testing.T) {
	s := newTestStore()
	if err := s.kv.Set(keyClients, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if got := s.Clients(); len(got) != 0 {
		t.Errorf("Clients() over malformed data = %v, want empty", got)
	}
	// same policy for the singleton and the counter.
	if err := s.kv.Set(keyCompanyInfo, []byte("][")); err != nil {
		t.Fatal(err)
	}
	if got := s.CompanyInfo(); got != (CompanyInfo{}) {
		t.Errorf("CompanyInfo() over malformed data = %+v, want zero", got)
	}
	if err := s.kv.Set(keyCounter, []byte("not-a-number")); err != nil {
		t.Fatal(err)
	}
	if got, err := s.NextInvoiceNumber(); err != nil || got != "INV-0001" {
		t.Errorf("NextInvoiceNumber() over malformed counter = %q, %v, want INV-0001", got, err)
	}
}

func TestStore_DirKVRoundTrip(t *testing.T) {
	kv, err := NewDirKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(kv)
	c := Client{ID: NewID(), Name: "On Disk", CreatedAt: s.Timestamp()}
	if err := s.SaveClient(c); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	got := s.Client(c.ID)
	if got == nil || !reflect.DeepEqual(*got, c) {
		t.Errorf("Client() over DirKV = %+v, want %+v", got, c)
	}
}
