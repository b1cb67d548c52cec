// Package lock serializes swapgen processes that write the shared cache.
package lock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// FileName is the lock file created inside the locked directory.
const FileName = ".lock"

// Info is the metadata stored in a lock file.
type Info struct {
	PID       int       `json:"pid"`
	CreatedAt time.Time `json:"created_at"`
	Cmd       string    `json:"cmd,omitempty"`
}

// ErrLocked indicates a non-stale lock is held by another process.
type ErrLocked struct {
	Info *Info // nil if the lock file is unreadable
	Path string
}

func (e *ErrLocked) Error() string {
	if e.Info != nil {
		return fmt.Sprintf("cache is locked by pid %d since %s (lock file: %s)",
			e.Info.PID, e.Info.CreatedAt.Format(time.RFC3339), e.Path)
	}
	return fmt.Sprintf("cache is locked (lock file: %s)", e.Path)
}

// DirLock is a PID lock file guarding one directory.
type DirLock struct {
	Dir        string
	StaleAfter time.Duration
	Now        func() time.Time
	IsPIDAlive func(pid int) bool
}

// New returns a DirLock for dir with defaults:
//   - StaleAfter: 1h (an interactive session rarely lasts longer)
//   - Now: time.Now
//   - IsPIDAlive: signal 0 probe
func New(dir string) DirLock {
	return DirLock{
		Dir:        dir,
		StaleAfter: time.Hour,
		Now:        time.Now,
		IsPIDAlive: isPIDAlive,
	}
}

// Path returns the lock file path.
func (l DirLock) Path() string {
	return filepath.Join(l.Dir, FileName)
}

// Lock acquires the lock and returns an unlock function.
// cmd is stored in the lock file for debugging (may be empty).
// A held, non-stale lock returns *ErrLocked. Stale locks are removed and
// acquisition is retried a few times.
func (l DirLock) Lock(cmd string) (unlock func() error, err error) {
	path := l.Path()
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	for attempt := 0; attempt < 3; attempt++ {
		created, err := l.tryCreate(path, cmd)
		if err != nil {
			return nil, err
		}
		if created {
			return func() error {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return err
				}
				return nil
			}, nil
		}

		info, readErr := readInfo(path)
		if readErr != nil {
			// unreadable lock: fall back to its mtime
			stat, statErr := os.Stat(path)
			if statErr != nil || l.Now().Sub(stat.ModTime()) <= l.StaleAfter {
				return nil, &ErrLocked{Path: path}
			}
		} else if !l.isStale(info) {
			return nil, &ErrLocked{Info: info, Path: path}
		}

		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, &ErrLocked{Info: info, Path: path}
		}
	}
	return nil, &ErrLocked{Path: path}
}

// tryCreate creates the lock file with O_EXCL. It reports false when the
// file already exists.
func (l DirLock) tryCreate(path, cmd string) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create lock file: %w", err)
	}

	data, _ := json.Marshal(Info{PID: os.Getpid(), CreatedAt: l.Now(), Cmd: cmd})
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return false, fmt.Errorf("failed to write lock file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return false, fmt.Errorf("failed to close lock file: %w", err)
	}
	return true, nil
}

func readInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (l DirLock) isStale(info *Info) bool {
	if !l.IsPIDAlive(info.PID) {
		return true
	}
	return l.Now().Sub(info.CreatedAt) > l.StaleAfter
}

// isPIDAlive sends signal 0, which only checks that the process exists.
func isPIDAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM: exists but owned by someone else
	return errors.Is(err, syscall.EPERM)
}
