// Package graphs provides embedded assets for the graphs CLI.
//
// The root package exists solely to embed [graphs.default.toml] via
// [DefaultConfigTOML], which the CLI copies to the data directory on first
// run.
package graphs

import _ "embed"

// DefaultConfigTOML holds the raw bytes of graphs.default.toml, generated by
// cmd/genconfig from config.ExampleConfig.
//
//go:embed graphs.default.toml
var DefaultConfigTOML []byte
