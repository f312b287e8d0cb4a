//go:build !windows

package backends

import (
	"schanctl/internal/ports"
	"schanctl/internal/types"
)

const defaultBackend = BackendDDB

func registryKeyStore() (ports.KeyStore, error) {
	return nil, types.Err(types.ErrInvalidBackend, nil, "registry backend is only available on windows")
}
