package ports

import "context"

// Restarter triggers an immediate machine restart. Implementations do not
// return once the restart has been accepted by the OS, so an error return
// always means the restart did not happen.
type Restarter interface {
	Restart(ctx context.Context) error
}

// Confirmer asks the operator a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}
