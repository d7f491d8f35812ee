/* kv.go
 * Contains the KV interface that abstracts the key-value medium the pool data
 * lives in, plus the two implementations: an in-memory map and a single JSON
 * file rewritten on every write. Both are synchronous and transactionless;
 * callers supply a fallback by pre-populating the out value before Get.
 */

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// KV is a synchronous get/put of JSON-serializable values by string key.
// Get returns false and leaves out untouched when the key is missing or its
// stored bytes do not unmarshal, so a caller-supplied default survives.
type KV interface {
	Get(key string, out any) bool
	Put(key string, v any) error
	Delete(key string) error
	Snapshot() map[string]json.RawMessage
}

// MemKV is the in-memory medium. It backs tests and is also what the file
// medium decodes into. The mutex exists for the mirror goroutine, which calls
// Snapshot concurrently with the single writer's Puts.
type MemKV struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemKV creates an empty in-memory medium
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]json.RawMessage)}
}

func (m *MemKV) Get(key string, out any) bool {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (m *MemKV) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current contents. Used by the mirror when
// building a remote snapshot document.
func (m *MemKV) Snapshot() map[string]json.RawMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]json.RawMessage, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}

// FileKV keeps the whole medium in one JSON file: read once on open,
// rewritten in full after every Put or Delete. Last write wins; two processes
// sharing the file is an accepted, unhandled hazard.
type FileKV struct {
	path string
	mem  *MemKV
}

// OpenFileKV loads the medium from path, treating a missing file as empty.
// Preconditions: receives the file path to persist into
// Postconditions: returns the loaded FileKV, or an error if the file exists
// but cannot be read or parsed
func OpenFileKV(path string) (*FileKV, error) {
	f := &FileKV{path: path, mem: NewMemKV()}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	if len(raw) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(raw, &f.mem.data); err != nil {
		return nil, fmt.Errorf("data file %s is not valid JSON: %w", path, err)
	}
	if f.mem.data == nil {
		f.mem.data = make(map[string]json.RawMessage)
	}
	return f, nil
}

func (f *FileKV) Get(key string, out any) bool {
	return f.mem.Get(key, out)
}

func (f *FileKV) Put(key string, v any) error {
	if err := f.mem.Put(key, v); err != nil {
		return err
	}
	return f.save()
}

func (f *FileKV) Delete(key string) error {
	if err := f.mem.Delete(key); err != nil {
		return err
	}
	return f.save()
}

func (f *FileKV) Snapshot() map[string]json.RawMessage {
	return f.mem.Snapshot()
}

func (f *FileKV) save() error {
	raw, err := json.MarshalIndent(f.mem.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", f.path, err)
	}
	return nil
}
