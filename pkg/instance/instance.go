// Package instance keeps a PID file so that only one interactive lock
// screen runs per user.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ErrRunning is returned by Acquire when a live process holds the PID file.
var ErrRunning = errors.New("lockscreen already running")

// Lock is a held PID file.
type Lock struct {
	path string
}

// Acquire writes the current PID to path. A PID file left behind by a dead
// process is replaced. The write goes through a temporary file and a rename
// so a reader never sees a partial PID.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create PID directory: %w", err)
	}

	if pid, err := ReadPID(path); err == nil {
		if pid != os.Getpid() && Alive(pid) {
			return nil, fmt.Errorf("%w (PID %d)", ErrRunning, pid)
		}
		os.Remove(path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return nil, fmt.Errorf("write temp PID file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("rename PID file: %w", err)
	}
	return &Lock{path: path}, nil
}

// Path returns the PID file location.
func (l *Lock) Path() string {
	return l.path
}

// Release removes the PID file if it still names this process.
func (l *Lock) Release() error {
	if pid, err := ReadPID(l.path); err != nil || pid != os.Getpid() {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove PID file: %w", err)
	}
	return nil
}

// ReadPID reads and parses the PID stored at path.
func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read PID file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse PID file: %w", err)
	}
	return pid, nil
}

// Alive reports whether a process with pid exists, using signal 0.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return p.Signal(syscall.Signal(0)) == nil
}
