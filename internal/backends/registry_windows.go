//go:build windows

package backends

import (
	"schanctl/internal/backends/winreg"
	"schanctl/internal/ports"
)

const defaultBackend = BackendRegistry

func registryKeyStore() (ports.KeyStore, error) {
	return winreg.NewKeyStore(), nil
}
