// Package main implements the graphs CLI, which parses hex color specs,
// prints categorical palettes, resolves chart color themes and lints theme
// files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	rootpkg "tools.zach/dev/graphs"
	"tools.zach/dev/graphs/internal/config"
	"tools.zach/dev/graphs/internal/logger"
	"tools.zach/dev/graphs/internal/paths"
	"tools.zach/dev/graphs/internal/watch"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// resolveVersion returns the ldflags version, or "dev+<hash>" from the VCS
// info embedded by the Go toolchain.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	v := "dev+" + revision[:min(7, len(revision))]
	if dirty {
		v += ".dirty"
	}
	return v
}

// ///////////////////////////////////////////////
// Setup
// ///////////////////////////////////////////////

// defaultDataDir returns ~/.graphs, or ./.graphs when the home directory is
// unknown.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", paths.DataDirRel)
	}
	return filepath.Join(home, paths.DataDirRel)
}

// setup prepares the data directory, writes the default config on first run,
// loads the config and installs the default logger. An explicit logLevel
// sends logs to stderr; otherwise they go to the rotating log file.
func setup(dd paths.DataDir, logLevel string, stderr io.Writer) (*config.Config, func(), error) {
	if err := os.MkdirAll(dd.Root, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(dd.Config()); os.IsNotExist(err) {
		if writeErr := os.WriteFile(dd.Config(), rootpkg.DefaultConfigTOML, 0o644); writeErr != nil {
			fmt.Fprintf(stderr, "warning: failed to write default config: %v\n", writeErr)
		}
	}

	cfg, err := config.Load(dd.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	closeLog := func() {}
	var log *slog.Logger
	if logLevel != "" {
		log = logger.NewConsole(stderr, logger.ParseLevel(logLevel))
	} else {
		var closer io.Closer
		log, closer = logger.NewLogger(dd.Log(), logger.ParseLevel(cfg.Log.Level), cfg.Log.MaxSizeMB)
		closeLog = func() { closer.Close() }
	}
	slog.SetDefault(log)
	return cfg, closeLog, nil
}

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

const usageText = `usage: %s [flags] <command> [args]

commands:
  parse HEX...        print the channels each hex spec resolves to
  palette [-n N]      print N generated palette colors
  theme [-watch]      resolve the configured theme
  lint [PATTERN...]   report theme colors that would render as black
  version             print the build version

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on success, 1 on
// failure or lint issues, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(paths.BinaryName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataDir := fs.String("data-dir", defaultDataDir(), "data directory for config, themes, cache and logs")
	logLevel := fs.String("log-level", "", "log to stderr at this level instead of the log file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, usageText, paths.BinaryName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	if cmd == "version" {
		fmt.Fprintln(stdout, resolveVersion())
		return 0
	}

	dd := paths.DataDir{Root: *dataDir}
	cfg, closeLog, err := setup(dd, *logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "fatal: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.Debug("graphs starting", "version", resolveVersion(), "command", cmd, "data_dir", dd.Root)

	env := &cmdEnv{
		cfg:    cfg,
		dirs:   dd,
		out:    newPrinter(stdout),
		stderr: stderr,

		pollInterval: watch.DefaultPollInterval,
	}
	switch cmd {
	case "parse":
		return env.parse(rest)
	case "palette":
		return env.palette(rest)
	case "theme":
		return env.theme(rest, signalChannel())
	case "lint":
		return env.lint(rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}
}
