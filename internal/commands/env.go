// Package commands implements swapgen CLI commands.
package commands

import (
	"io"
	"time"

	"github.com/sirap-group/swapgen/internal/exec"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/logger"
	"github.com/sirap-group/swapgen/internal/paths"
	"github.com/sirap-group/swapgen/internal/store"
)

// Env holds the process dependencies shared by every command.
// Tests substitute stubs for each field.
type Env struct {
	FS     fs.FS
	Runner exec.Runner
	Dirs   paths.Dirs
	Log    *logger.Logger
	Now    func() time.Time

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (e Env) store() *store.Store {
	now := e.Now
	if now == nil {
		now = time.Now
	}
	return store.NewStore(e.FS, e.Dirs.CacheDir, now)
}

func (e Env) log() *logger.Logger {
	if e.Log == nil {
		return logger.NewNop()
	}
	return e.Log
}
