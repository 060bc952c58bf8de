package theme

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/graphs/colors"
)

// Issue is a problem found in a theme file.
type Issue struct {
	// Path is slash-separated and relative to the lint root.
	Path string
	// Key is the offending TOML key, e.g. "colors.bar" or "palette[2]".
	// Empty for file-level problems.
	Key string
	// Value is the offending value, if any.
	Value   string
	Message string
}

func (i Issue) String() string {
	switch {
	case i.Key == "":
		return fmt.Sprintf("%s: %s", i.Path, i.Message)
	case i.Value == "":
		return fmt.Sprintf("%s: %s: %s", i.Path, i.Key, i.Message)
	default:
		return fmt.Sprintf("%s: %s = %q: %s", i.Path, i.Key, i.Value, i.Message)
	}
}

// Lint checks every file under root matching one of patterns and none of
// ignore. It reports undecodable files, unknown keys and roles, and color
// specs that [colors.ParseHex] would replace with black. Issues are sorted by
// path, then key.
func Lint(root string, patterns, ignore []string) ([]Issue, error) {
	fsys := os.DirFS(root)
	files, err := matchFiles(fsys, patterns, ignore)
	if err != nil {
		return nil, err
	}
	slog.Debug("linting themes", "root", root, "files", len(files))

	var issues []Issue
	for _, name := range files {
		issues = append(issues, lintFile(fsys, name)...)
	}
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Key, b.Key))
	})
	return issues, nil
}

// matchFiles expands patterns over fsys, dropping directories, duplicates and
// ignored paths. The result is sorted.
func matchFiles(fsys fs.FS, patterns, ignore []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("glob %q: %w", pattern, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || ignored(m, ignore) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	slices.Sort(files)
	return files, nil
}

func ignored(name string, ignore []string) bool {
	for _, pattern := range ignore {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			slog.Warn("invalid ignore pattern", "pattern", pattern, "error", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func lintFile(fsys fs.FS, name string) []Issue {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return []Issue{{Path: name, Message: err.Error()}}
	}
	t, unknown, err := Decode(data)
	if err != nil {
		return []Issue{{Path: name, Message: err.Error()}}
	}

	var issues []Issue
	for _, k := range unknown {
		issues = append(issues, Issue{Path: name, Key: k, Message: "unknown key"})
	}
	_, shadowed := roleKeys(t.Colors)
	for role, spec := range t.Colors {
		key := "colors." + role
		if _, ok := colors.ParseRole(role); !ok {
			issues = append(issues, Issue{Path: name, Key: key, Message: "unknown role"})
			continue
		}
		if winner, dup := shadowed[role]; dup {
			issues = append(issues, Issue{Path: name, Key: key, Value: spec, Message: "duplicate of colors." + winner + ", ignored"})
			continue
		}
		if !colors.Valid(spec) {
			issues = append(issues, Issue{Path: name, Key: key, Value: spec, Message: "invalid hex color, renders as black"})
		}
	}
	for i, spec := range t.Palette {
		if !colors.Valid(spec) {
			issues = append(issues, Issue{Path: name, Key: fmt.Sprintf("palette[%d]", i), Value: spec, Message: "invalid hex color, renders as black"})
		}
	}
	if t.PaletteSize < 0 {
		issues = append(issues, Issue{Path: name, Key: "palette_size", Value: fmt.Sprint(t.PaletteSize), Message: "must be >= 0"})
	}
	return issues
}
