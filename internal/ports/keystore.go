package ports

import "context"

// KeyStore is a hierarchical key-path store holding one numeric enablement
// flag per path. Paths use forward slashes regardless of backend; backends
// translate to their native separator.
type KeyStore interface {
	// GetFlag returns the flag stored at path.
	// MUST return types.ErrNotFound if no entry exists; absence is the
	// expected Default case, not a failure.
	GetFlag(ctx context.Context, path string) (uint32, error)

	// SetFlag creates or overwrites the flag entry at path, creating
	// intermediate structure as needed.
	SetFlag(ctx context.Context, path string, value uint32) error

	// DeleteKey removes the entry at path.
	// MUST return types.ErrNotFound if no entry exists.
	DeleteKey(ctx context.Context, path string) error

	// ClearAll purges every entry under the managed root. Used in tests only.
	ClearAll(ctx context.Context) error
}
