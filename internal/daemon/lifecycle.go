package daemon

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"time"
)

type LifecycleManager struct {
	lockFile   *LockFile
	pidFile    *PIDFile
	socketPath string
}

func NewLifecycleManager(baseDir, socketPath string) *LifecycleManager {
	return &LifecycleManager{
		lockFile:   NewLockFile(filepath.Join(baseDir, "daemon.lock")),
		pidFile:    NewPIDFile(filepath.Join(baseDir, "daemon.pid")),
		socketPath: socketPath,
	}
}

// AcquireInstanceLock takes the single-instance lock. When another
// instance holds it, the error names the owning pid and whether its
// control socket still answers, so a stale holder is distinguishable
// from a live one.
func (lm *LifecycleManager) AcquireInstanceLock() error {
	err := lm.lockFile.Acquire()
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrLockHeld) {
		return fmt.Errorf("acquire instance lock: %w", err)
	}

	pid, _ := lm.pidFile.Read()
	if lm.IsSocketResponsive() {
		return fmt.Errorf("%w: pid %d is answering on %s", ErrLockHeld, pid, lm.socketPath)
	}
	return fmt.Errorf("%w: pid %d is not answering on %s", ErrLockHeld, pid, lm.socketPath)
}

// IsSocketResponsive reports whether a daemon answers on the socket.
func (lm *LifecycleManager) IsSocketResponsive() bool {
	conn, err := net.DialTimeout("unix", lm.socketPath, 500*time.Millisecond)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (lm *LifecycleManager) RegisterRunningDaemon() error {
	return lm.pidFile.Write()
}

func (lm *LifecycleManager) Cleanup() {
	lm.pidFile.Remove()
	lm.lockFile.Release()
}
