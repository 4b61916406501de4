//go:build unix

package daemon

import (
	"syscall"
)

// processExists checks if a process with the given PID exists by sending signal 0.
func processExists(pid int) bool {
	err := syscall.Kill(pid, 0)
	return err == nil
}
