// Package paths resolves swapgen's config and cache directories following XDG conventions.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDir = "swapgen"

// Dirs holds the resolved directory paths for swapgen config and cache.
type Dirs struct {
	ConfigDir string
	CacheDir  string
}

// ConfigFile returns the default config file path.
func (d Dirs) ConfigFile() string {
	return filepath.Join(d.ConfigDir, "swapgen.yaml")
}

// Env is the interface for environment variable lookups.
// Implementations must return "" for unset variables.
type Env interface {
	Get(key string) string
}

// OSEnv reads the process environment.
type OSEnv struct{}

// Get implements Env.
func (OSEnv) Get(key string) string { return os.Getenv(key) }

// dirKind describes how one directory is resolved.
type dirKind struct {
	override string   // swapgen-specific env var
	xdg      string   // XDG base dir env var
	darwin   []string // path under $HOME on macOS
	fallback []string // path under $HOME elsewhere
}

var (
	configKind = dirKind{
		override: "SWAPGEN_CONFIG_DIR",
		xdg:      "XDG_CONFIG_HOME",
		darwin:   []string{"Library", "Preferences"},
		fallback: []string{".config"},
	}
	cacheKind = dirKind{
		override: "SWAPGEN_CACHE_DIR",
		xdg:      "XDG_CACHE_HOME",
		darwin:   []string{"Library", "Caches"},
		fallback: []string{".cache"},
	}
)

// ResolveDirs computes the config and cache directories from environment
// variables and platform defaults.
//
// Resolution order (config shown, cache is analogous):
//  1. SWAPGEN_CONFIG_DIR env var (if set)
//  2. macOS: ~/Library/Preferences/swapgen
//  3. XDG_CONFIG_HOME/swapgen (if set)
//  4. ~/.config/swapgen
//
// homeDir must be absolute. Nothing is created on disk.
// ~ inside env vars is treated as literal (not expanded).
func ResolveDirs(env Env, homeDir string) Dirs {
	return ResolveDirsWithOS(env, homeDir, IsDarwin())
}

// IsDarwin returns true if the current OS is macOS.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// ResolveDirsWithOS is like ResolveDirs but accepts an explicit OS flag for testing.
func ResolveDirsWithOS(env Env, homeDir string, isDarwin bool) Dirs {
	return Dirs{
		ConfigDir: resolve(configKind, env, homeDir, isDarwin),
		CacheDir:  resolve(cacheKind, env, homeDir, isDarwin),
	}
}

func resolve(k dirKind, env Env, homeDir string, isDarwin bool) string {
	if v := env.Get(k.override); v != "" {
		return v
	}
	if isDarwin {
		return filepath.Join(append(append([]string{homeDir}, k.darwin...), appDir)...)
	}
	if v := env.Get(k.xdg); v != "" {
		return filepath.Join(v, appDir)
	}
	return filepath.Join(append(append([]string{homeDir}, k.fallback...), appDir)...)
}
