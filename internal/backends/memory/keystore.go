// Package memory is an in-process KeyStore used by tests and dry runs. It
// mirrors the contract of the real backends, including ErrNotFound on absent
// entries, so reader/writer logic can be exercised without an OS store.
package memory

import (
	"context"
	"schanctl/internal/types"
	"sync"
)

type KeyStore struct {
	mu      sync.Mutex
	entries map[string]uint32
	// FailOn, when non-empty, makes any access to that path fail with
	// ErrStoreAccess. Lets tests simulate permission-denied mid-batch.
	FailOn string
}

func New() *KeyStore {
	return &KeyStore{entries: map[string]uint32{}}
}

func (s *KeyStore) GetFlag(ctx context.Context, path string) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailOn != "" && s.FailOn == path {
		return 0, types.Err(types.ErrStoreAccess, nil, "access denied: %s", path)
	}
	v, ok := s.entries[path]
	if !ok {
		return 0, types.ErrNotFound
	}
	return v, nil
}

func (s *KeyStore) SetFlag(ctx context.Context, path string, value uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailOn != "" && s.FailOn == path {
		return types.Err(types.ErrStoreAccess, nil, "access denied: %s", path)
	}
	s.entries[path] = value
	return nil
}

func (s *KeyStore) DeleteKey(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailOn != "" && s.FailOn == path {
		return types.Err(types.ErrStoreAccess, nil, "access denied: %s", path)
	}
	if _, ok := s.entries[path]; !ok {
		return types.ErrNotFound
	}
	delete(s.entries, path)
	return nil
}

func (s *KeyStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]uint32{}
	return nil
}

// Len reports how many entries exist. Test helper.
func (s *KeyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
