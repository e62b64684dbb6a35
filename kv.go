package invoicer

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KV is the persistence primitive the Store is built on: a synchronous
// byte-string key-value area scoped to the local device. An absent key
// is not an error; it reads as (nil, false).
//
// The model assumes exactly one active writer. Two concurrent writers
// can race and silently overwrite each other's last write; the store
// does not try to solve that.
type KV interface {
	// Get returns the bytes stored under key, or false if absent.
	Get(key string) ([]byte, bool)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}

// DirKV is a KV backed by a directory, one file per key. Writes are
// synchronous: when Set returns, the file is written.
type DirKV struct {
	dir string
}

// NewDirKV opens (creating if needed) a directory-backed KV.
func NewDirKV(dir string) (*DirKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	return &DirKV{dir: dir}, nil
}

func (kv *DirKV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

func (kv *DirKV) Get(key string) ([]byte, bool) {
	b, err := os.ReadFile(kv.path(key))
	if err != nil {
		// absent and unreadable read the same: no data.
		return nil, false
	}
	return b, true
}

func (kv *DirKV) Set(key string, value []byte) error {
	if err := os.WriteFile(kv.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

// MemKV is an in-memory KV, useful as a test fake and for embedding the
// store without touching the filesystem.
type MemKV struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemKV returns an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string][]byte)}
}

func (kv *MemKV) Get(key string) ([]byte, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	b, ok := kv.m[key]
	return b, ok
}

func (kv *MemKV) Set(key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = append([]byte(nil), value...)
	return nil
}
