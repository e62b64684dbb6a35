package invoicer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDirKV(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewDirKV(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := kv.Get("clients"); ok {
		t.Error("Get on absent key reported a value")
	}
	if err := kv.Set("clients", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := kv.Get("clients")
	if !ok || !bytes.Equal(got, []byte(`[]`)) {
		t.Errorf("Get = %q, %v, want [] true", got, ok)
	}

	// one file per key, readable on disk.
	b, err := os.ReadFile(filepath.Join(dir, "data", "clients.json"))
	if err != nil {
		t.Fatalf("key file not written: %v", err)
	}
	if !bytes.Equal(b, []byte(`[]`)) {
		t.Errorf("file content = %q, want []", b)
	}

	// Set replaces the previous value wholesale.
	if err := kv.Set("clients", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ = kv.Get("clients")
	if !bytes.Equal(got, []byte(`[{"id":"a"}]`)) {
		t.Errorf("Get after overwrite = %q", got)
	}
}

func TestMemKV_CopiesValue(t *testing.T) {
	kv := NewMemKV()
	v := []byte("original")
	if err := kv.Set("k", v); err != nil {
		t.Fatal(err)
	}
	v[0] = 'X'
	got, _ := kv.Get("k")
	if string(got) != "original" {
		t.Errorf("MemKV aliased the caller's slice: %q", got)
	}
}
