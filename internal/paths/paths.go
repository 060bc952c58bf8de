// Package paths centralizes the file names kept in the graphs data directory.
package paths

import "path/filepath"

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Data directory file names.
const (
	ConfigFile     = "graphs.toml"
	LogFile        = "graphs.log"
	ThemeCacheFile = "theme-cache.toml"
	ThemesDir      = "themes"
	WatchLockFile  = "watch.pid"
)

const (
	BinaryName = "graphs"
	DataDirRel = ".graphs" // relative to $HOME
)

// ///////////////////////////////////////////////
// DataDir
// ///////////////////////////////////////////////

// DataDir builds paths rooted at a data directory.
type DataDir struct {
	Root string
}

// Config returns the full path to the config file.
func (d DataDir) Config() string { return filepath.Join(d.Root, ConfigFile) }

// Log returns the full path to the log file.
func (d DataDir) Log() string { return filepath.Join(d.Root, LogFile) }

// ThemeCache returns the full path to the last successfully fetched theme.
func (d DataDir) ThemeCache() string { return filepath.Join(d.Root, ThemeCacheFile) }

// Themes returns the directory the linter scans by default.
func (d DataDir) Themes() string { return filepath.Join(d.Root, ThemesDir) }

// WatchLock returns the PID file held by a running `theme -watch`.
func (d DataDir) WatchLock() string { return filepath.Join(d.Root, WatchLockFile) }
