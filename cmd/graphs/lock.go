package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ///////////////////////////////////////////////
// Watch Lock
// ///////////////////////////////////////////////

// acquireWatchLock locks the PID file at path and records the current PID.
// Only one `theme -watch` per data directory may hold it, since watchers
// share the theme cache. The returned file must stay open while watching;
// pass it to releaseWatchLock when done.
func acquireWatchLock(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open watch lock: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		if pid := readPID(path); pid > 0 {
			return nil, fmt.Errorf("another watcher is running (pid %d): %w", pid, err)
		}
		return nil, fmt.Errorf("another watcher is running: %w", err)
	}
	if err := f.Truncate(0); err != nil {
		_ = unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("truncate watch lock: %w", err)
	}
	if _, err := f.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		_ = unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("write watch lock: %w", err)
	}
	return f, nil
}

// releaseWatchLock unlocks and removes the PID file.
func releaseWatchLock(path string, f *os.File) {
	if f == nil {
		return
	}
	_ = unlockFile(f)
	f.Close()
	os.Remove(path)
}

func readPID(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
