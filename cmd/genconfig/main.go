// Package main implements the genconfig tool that writes graphs.default.toml
// from config.ExampleConfig().
//
// It is invoked by go generate via the directive in internal/config/config.go.
package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/graphs/internal/config"
)

func main() {
	result, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	// go generate runs from internal/config/; ../../ is the repo root where
	// configdata.go embeds graphs.default.toml.
	outPath := "../../graphs.default.toml"
	if err := os.WriteFile(outPath, []byte(result), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote graphs.default.toml\n")
}

// render encodes cfg as TOML, strips the encoder's indentation and spacing,
// and annotates every section and key documented in docs.
func render(cfg *config.Config, docs map[string]config.FieldDoc) (string, error) {
	var raw bytes.Buffer
	if err := toml.NewEncoder(&raw).Encode(cfg); err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	lines := strings.Split(raw.String(), "\n")

	// Section headers are documented on the header itself, never injected as
	// omitted keys of their parent.
	sections := map[string]bool{}
	for _, line := range lines {
		if s, ok := sectionHeader(strings.TrimSpace(line)); ok {
			sections[s] = true
		}
	}

	out := []string{
		"# ///////////////////////////////////////////////",
		"# Graphs Configuration",
		"# ///////////////////////////////////////////////",
	}

	var sectionStack []string
	emitted := map[string]bool{}
	for s := range sections {
		emitted[s] = true
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if section, ok := sectionHeader(trimmed); ok {
			injectOmitted(&out, sectionStack, docs, emitted)
			sectionStack = parseSectionPath(section)

			out = append(out, "", fmt.Sprintf("# ///// %s /////", sectionName(section)), "")
			if doc, ok := docs[section]; ok {
				out = appendComment(out, doc.Comment)
			}
			out = append(out, trimmed)
			continue
		}

		if !strings.Contains(trimmed, "=") || strings.HasPrefix(trimmed, "#") {
			out = append(out, trimmed)
			continue
		}

		key := strings.TrimSpace(strings.SplitN(trimmed, "=", 2)[0])
		fullPath := key
		if len(sectionStack) > 0 {
			fullPath = strings.Join(sectionStack, ".") + "." + key
		}
		emitted[fullPath] = true

		doc, ok := docs[fullPath]
		if !ok {
			out = append(out, trimmed)
			continue
		}
		out = appendComment(out, doc.Comment)
		out = append(out, trimmed)
		for _, alt := range doc.Alternatives {
			out = append(out, "# "+alt)
		}
	}
	injectOmitted(&out, sectionStack, docs, emitted)

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n", nil
}

// sectionHeader returns the dotted name of a [table] header line.
func sectionHeader(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "[[") {
		return "", false
	}
	return strings.Trim(trimmed, "[] "), true
}

func appendComment(out []string, comment string) []string {
	if comment == "" {
		return out
	}
	for _, cl := range strings.Split(comment, "\n") {
		out = append(out, "# "+cl)
	}
	return out
}

// injectOmitted appends commented-out entries for documented keys of the
// current section that the encoder skipped (omitempty fields holding their
// zero value), so every documented option appears in the generated file.
// Keys are sorted for deterministic output.
func injectOmitted(out *[]string, sectionStack []string, docs map[string]config.FieldDoc, emitted map[string]bool) {
	if len(sectionStack) == 0 {
		return
	}
	prefix := strings.Join(sectionStack, ".") + "."

	var omitted []string
	for path := range docs {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(path, prefix), ".") {
			continue
		}
		if emitted[path] {
			continue
		}
		omitted = append(omitted, path)
	}
	sort.Strings(omitted)

	for _, path := range omitted {
		doc := docs[path]
		*out = append(*out, "")
		*out = appendComment(*out, doc.Comment)
		for _, alt := range doc.Alternatives {
			*out = append(*out, "# "+alt)
		}
		emitted[path] = true
	}
}

// parseSectionPath splits a dotted TOML section header (e.g. "theme.colors")
// into its path segments.
func parseSectionPath(section string) []string {
	return strings.Split(section, ".")
}

// sectionName returns the last dotted segment of a section header with its
// first letter capitalized: "theme.colors" yields "Colors".
func sectionName(section string) string {
	parts := strings.Split(section, ".")
	last := parts[len(parts)-1]
	if len(last) == 0 {
		return ""
	}
	return strings.ToUpper(last[:1]) + last[1:]
}
