package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

var ErrAlreadyRunning = errors.New("pidfile: already running")

// CreatePidFile writes the current pid to path, unless it names a live process.
func CreatePidFile(path string) error {
	pidBytes, err := os.ReadFile(path)

	switch {
	case err == nil:
		pid, convErr := strconv.Atoi(strings.TrimSpace(string(pidBytes)))

		if convErr == nil && isAlive(pid) {
			return fmt.Errorf("%w: process with pid %d already exists", ErrAlreadyRunning, pid)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("pidfile: could not read pid file: %w", err)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return fmt.Errorf("pidfile: could not write pid file: %w", err)
	}

	return nil
}

func RemovePidFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("pidfile: could not remove pid file: %w", err)
	}
	return nil
}

func isAlive(pid int) bool {
	if pid <= 0 || pid == os.Getpid() {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// signal 0 only checks the process exists
	return process.Signal(syscall.Signal(0)) == nil
}
