package paths

import (
	"path/filepath"
	"testing"
)

func TestDataDirMethods(t *testing.T) {
	root := filepath.Join("home", "user", ".graphs")
	d := DataDir{Root: root}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Config", d.Config(), filepath.Join(root, "graphs.toml")},
		{"Log", d.Log(), filepath.Join(root, "graphs.log")},
		{"ThemeCache", d.ThemeCache(), filepath.Join(root, "theme-cache.toml")},
		{"Themes", d.Themes(), filepath.Join(root, "themes")},
		{"WatchLock", d.WatchLock(), filepath.Join(root, "watch.pid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestDataDirEmptyRoot(t *testing.T) {
	d := DataDir{}
	if got := d.Config(); got != ConfigFile {
		t.Errorf("Config() with empty root = %q, want %q", got, ConfigFile)
	}
}
