package config

// FieldDoc documents one config key in the generated graphs.default.toml.
type FieldDoc struct {
	// Comment is emitted above the key.
	Comment string
	// Alternatives are emitted as commented-out lines below the key.
	Alternatives []string
}

// ConfigDocs maps dotted TOML paths to their documentation. Section paths
// (e.g. "theme.colors") document the table header.
var ConfigDocs = map[string]FieldDoc{
	"theme": {
		Comment: "Where chart colors come from.",
	},
	"theme.source": {
		Comment:      "inline: use [theme.colors] only.\nfile: load a theme TOML from theme.file.\nurl: fetch a theme TOML from theme.url, caching the last good copy.",
		Alternatives: []string{`source = "file"`, `source = "url"`},
	},
	"theme.file": {
		Comment:      "Theme file for source = \"file\". Relative to the data directory.",
		Alternatives: []string{`file = "themes/dark.toml"`},
	},
	"theme.url": {
		Comment:      "Theme URL for source = \"url\".",
		Alternatives: []string{`url = "https://example.com/graphs/theme.toml"`},
	},
	"theme.palette_size": {
		Comment: "Number of generated pie segment colors when the theme lists no palette.",
	},
	"theme.colors": {
		Comment: "Role colors for source = \"inline\", as hex specs: RRGGBB or RRGGBBAA,\noptionally prefixed with #, 0x or 0X. Anything else renders as opaque black.",
	},
	"lint": {
		Comment: "Theme files checked by `graphs lint`.",
	},
	"lint.patterns": {
		Comment: "Doublestar globs relative to the data directory.",
	},
	"lint.ignore": {
		Comment:      "Globs excluded from the pattern matches.",
		Alternatives: []string{`ignore = ["themes/vendor/**"]`},
	},
	"log": {},
	"log.level": {
		Comment:      "Minimum log level.",
		Alternatives: []string{`level = "debug"`, `level = "trace"`},
	},
	"log.max_size_mb": {
		Comment: "Rotate graphs.log after this many megabytes.",
	},
}
