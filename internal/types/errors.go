package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured is returned when resetting a protocol to Default and no
	// explicit entry exists. Callers that treat "already Default" as success
	// can test for it with errors.Is.
	ErrNotConfigured = errors.New("protocol not configured")

	ErrInvalidProtocol = errors.New("invalid protocol")
	ErrInvalidState    = errors.New("invalid status value")

	ErrInvalidBackend = errors.New("invalid backend")
	ErrStoreAccess    = errors.New("store read/write error")
)

func Err(typedError error, innerErr error, msgTemplate string, args ...any) error {
	if msgTemplate == "" {
		return errors.Join(typedError, innerErr)
	} else {
		return errors.Join(typedError, innerErr, fmt.Errorf(msgTemplate, args...))
	}
}
