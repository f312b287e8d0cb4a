//go:build windows

// Package winreg is the real OS backend: protocol flag entries live under
// HKEY_LOCAL_MACHINE, one key per store path with a single "Enabled" DWORD.
package winreg

import (
	"context"
	"errors"
	"schanctl/internal/types"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const enabledValueName = "Enabled"

type KeyStore struct {
	root registry.Key
}

func NewKeyStore() *KeyStore {
	return &KeyStore{root: registry.LOCAL_MACHINE}
}

func (s *KeyStore) GetFlag(ctx context.Context, path string) (uint32, error) {
	k, err := registry.OpenKey(s.root, winPath(path), registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, types.ErrNotFound
		}
		return 0, err
	}
	defer k.Close()
	v, _, err := k.GetIntegerValue(enabledValueName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, types.ErrNotFound
		}
		return 0, err
	}
	return uint32(v), nil
}

func (s *KeyStore) SetFlag(ctx context.Context, path string, value uint32) error {
	// CreateKey creates intermediate keys as needed and opens an existing one.
	k, _, err := registry.CreateKey(s.root, winPath(path), registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.SetDWordValue(enabledValueName, value)
}

func (s *KeyStore) DeleteKey(ctx context.Context, path string) error {
	err := registry.DeleteKey(s.root, winPath(path))
	if errors.Is(err, registry.ErrNotExist) {
		return types.ErrNotFound
	}
	return err
}

// ClearAll is refused on the live registry; bulk wiping HKLM is never what a
// test run should do. Use the memory or redis backend for tests.
func (s *KeyStore) ClearAll(ctx context.Context) error {
	return types.Err(types.ErrStoreAccess, nil, "refusing to clear the system registry")
}

func winPath(path string) string {
	return strings.ReplaceAll(path, "/", `\`)
}
