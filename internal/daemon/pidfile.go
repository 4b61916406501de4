package daemon

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PIDFile records the daemon's pid so other processes can report who
// holds the instance lock. It never follows symlinks: the state dir is
// user-writable and a planted link must not redirect the write.
type PIDFile struct {
	path string
}

func NewPIDFile(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Write records the current process id. A leftover file from a dead
// daemon is replaced.
func (p *PIDFile) Write() error {
	f, err := p.create()
	if os.IsExist(err) {
		if err := p.Remove(); err != nil {
			return fmt.Errorf("replace stale pid file: %w", err)
		}
		f, err = p.create()
	}
	if err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%d", os.Getpid())
	return err
}

func (p *PIDFile) create() (*os.File, error) {
	return os.OpenFile(p.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
}

// Read returns the recorded pid, or 0 when no daemon has registered.
func (p *PIDFile) Read() (int, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	pid, err := strconv.Atoi(text)
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("pid file %s holds %q, not a pid", p.path, text)
	}
	return pid, nil
}

// IsProcessAlive reports whether the recorded process still exists.
func (p *PIDFile) IsProcessAlive() bool {
	pid, err := p.Read()
	return err == nil && pid > 0 && processExists(pid)
}

// Remove deletes the pid file, refusing to follow a symlink.
func (p *PIDFile) Remove() error {
	if info, err := os.Lstat(p.path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("pid file %s is a symlink, not removing", p.path)
	}
	return os.Remove(p.path)
}
