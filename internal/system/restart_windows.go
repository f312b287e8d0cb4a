//go:build windows

package system

import (
	"context"
	"os/exec"
)

type MachineRestarter struct{}

// Restart requests an immediate reboot. Returns only if the OS rejected the
// request (typically missing SE_SHUTDOWN_NAME privilege).
func (MachineRestarter) Restart(ctx context.Context) error {
	return exec.CommandContext(ctx, "shutdown", "/r", "/t", "0").Run()
}
