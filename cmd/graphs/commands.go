package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tools.zach/dev/graphs/colors"
	"tools.zach/dev/graphs/internal/config"
	"tools.zach/dev/graphs/internal/paths"
	"tools.zach/dev/graphs/internal/theme"
	"tools.zach/dev/graphs/internal/watch"
)

// cmdEnv carries what every subcommand needs.
type cmdEnv struct {
	cfg    *config.Config
	dirs   paths.DataDir
	out    *printer
	stderr io.Writer

	// pollInterval is used when the theme watcher falls back to polling.
	pollInterval time.Duration
}

// done maps a command's final error to an exit code.
func (e *cmdEnv) done(err error) int {
	if err != nil {
		fmt.Fprintf(e.stderr, "fatal: %v\n", err)
		return 1
	}
	return 0
}

func (e *cmdEnv) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// ///////////////////////////////////////////////
// parse
// ///////////////////////////////////////////////

func (e *cmdEnv) parse(args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(e.stderr, "usage: %s parse HEX...\n", paths.BinaryName)
		return 2
	}
	t := e.out.table("INPUT", "HEX", "R", "G", "B", "A", "")
	for _, in := range args {
		note := ""
		if !colors.Valid(in) {
			note = "fallback"
			slog.Info("hex spec fell back to black", "input", in)
		}
		t.color(in, colors.ParseHex(in), note)
	}
	return e.done(t.flush())
}

// ///////////////////////////////////////////////
// palette
// ///////////////////////////////////////////////

func (e *cmdEnv) palette(args []string) int {
	fs := e.flags("palette")
	n := fs.Int("n", e.cfg.Theme.PaletteSize, "number of colors")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	// Entries repeat after one cycle, so longer listings carry no information.
	if *n < 0 || *n > colors.PaletteCycle {
		fmt.Fprintf(e.stderr, "palette: -n must be between 0 and %d, got %d\n", colors.PaletteCycle, *n)
		return 2
	}
	t := e.out.table("INDEX", "HEX", "R", "G", "B", "A", "")
	for i := range *n {
		t.color(fmt.Sprint(i), colors.PaletteColor(i), "")
	}
	return e.done(t.flush())
}

// ///////////////////////////////////////////////
// theme
// ///////////////////////////////////////////////

func (e *cmdEnv) themeSource() theme.SourceConfig {
	return theme.SourceConfig{
		Source:      e.cfg.Theme.Source,
		File:        e.cfg.ThemeFile(e.dirs.Root),
		URL:         e.cfg.Theme.URL,
		Colors:      e.cfg.Theme.Colors,
		PaletteSize: e.cfg.Theme.PaletteSize,
	}
}

func (e *cmdEnv) theme(args []string, stop <-chan os.Signal) int {
	fs := e.flags("theme")
	follow := fs.Bool("watch", false, "re-resolve the theme file whenever it changes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	src := e.themeSource()
	if *follow && src.Source != "file" {
		fmt.Fprintln(e.stderr, `theme: -watch requires theme.source = "file"`)
		return 2
	}
	if err := e.showTheme(src); err != nil {
		fmt.Fprintf(e.stderr, "fatal: %v\n", err)
		return 1
	}
	if !*follow {
		return 0
	}

	lock, err := acquireWatchLock(e.dirs.WatchLock())
	if err != nil {
		fmt.Fprintf(e.stderr, "fatal: %v\n", err)
		return 1
	}
	defer releaseWatchLock(e.dirs.WatchLock(), lock)

	w, err := watch.New(src.File, e.pollInterval)
	if err != nil {
		fmt.Fprintf(e.stderr, "fatal: %v\n", err)
		return 1
	}
	defer w.Close()
	slog.Info("watching theme file", "path", src.File, "polling", w.Polling())

	for {
		select {
		case <-stop:
			return 0
		case <-w.Events():
			fmt.Fprintln(e.out.w)
			if err := e.showTheme(src); err != nil {
				fmt.Fprintf(e.stderr, "theme reload failed: %v\n", err)
			}
		}
	}
}

func (e *cmdEnv) showTheme(src theme.SourceConfig) error {
	th, err := theme.Fetch(src, e.dirs.ThemeCache())
	if th == nil {
		return err
	}
	name := th.Name
	if err != nil {
		slog.Warn("theme loaded from cache", "error", err)
		name += " (cached)"
	}
	res := theme.Resolve(th)

	fmt.Fprintf(e.out.w, "theme: %s\n\n", name)
	t := e.out.table("ROLE", "HEX", "R", "G", "B", "A", "")
	for _, r := range colors.Roles {
		t.color(r.String(), res.Role(r), "")
	}
	if err := t.flush(); err != nil {
		return err
	}

	if len(res.Palette) == 0 {
		return nil
	}
	fmt.Fprintln(e.out.w)
	t = e.out.table("PALETTE", "HEX", "R", "G", "B", "A", "")
	for i, c := range res.Palette {
		t.color(fmt.Sprint(i), c, "")
	}
	return t.flush()
}

// ///////////////////////////////////////////////
// lint
// ///////////////////////////////////////////////

func (e *cmdEnv) lint(args []string) int {
	patterns := args
	if len(patterns) == 0 {
		patterns = e.cfg.Lint.Patterns
	}
	issues, err := theme.Lint(e.dirs.Root, patterns, e.cfg.Lint.Ignore)
	if err != nil {
		fmt.Fprintf(e.stderr, "fatal: %v\n", err)
		return 1
	}
	for _, i := range issues {
		fmt.Fprintln(e.out.w, i)
	}
	if len(issues) > 0 {
		slog.Info("lint found issues", "count", len(issues))
		fmt.Fprintf(e.out.w, "%d issue(s)\n", len(issues))
		return 1
	}
	fmt.Fprintln(e.out.w, "no issues")
	return 0
}
