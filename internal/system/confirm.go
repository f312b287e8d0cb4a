// Package system holds the machine-facing primitives the CLI composes with
// configuration writes: the immediate-restart trigger and the interactive
// confirmation prompt. Nothing here touches the key store.
package system

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalConfirmer asks a yes/no question on Out and blocks reading In
// until the operator answers. Only "y" and "yes" (any case) count as yes.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
