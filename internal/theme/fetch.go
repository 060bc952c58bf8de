package theme

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"tools.zach/dev/graphs/internal/atomicfile"
)

// maxThemeBytes caps theme downloads and files.
const maxThemeBytes = 1 << 20

var (
	httpClient     *retryablehttp.Client
	httpClientOnce sync.Once
)

func getHTTPClient() *retryablehttp.Client {
	httpClientOnce.Do(func() {
		httpClient = retryablehttp.NewClient()
		httpClient.RetryMax = 2
		httpClient.HTTPClient.Timeout = 10 * time.Second
		httpClient.Logger = nil
	})
	return httpClient
}

// ///////////////////////////////////////////////
// Source
// ///////////////////////////////////////////////

// SourceConfig describes where the active theme comes from. Built from
// config.ThemeConfig by the CLI.
type SourceConfig struct {
	Source string // "inline", "file", "url"
	File   string // absolute theme path for "file"
	URL    string // theme URL for "url"

	// Inline theme contents for source "inline".
	Colors      map[string]string
	PaletteSize int
}

// Fetch loads the theme described by src.
//
// "inline" builds the theme from src directly. "file" and "url" try the
// primary source first and store it at cachePath; when the primary fails the
// cached copy is returned together with a non-nil error describing the
// failure. When both fail Fetch returns nil and an error.
func Fetch(src SourceConfig, cachePath string) (*Theme, error) {
	switch src.Source {
	case "file":
		return fetchWithFallback(cachePath, func() (*Theme, error) {
			return fetchFile(src.File)
		})
	case "url":
		return fetchWithFallback(cachePath, func() (*Theme, error) {
			return fetchURL(src.URL)
		})
	default:
		return &Theme{Name: "inline", Colors: src.Colors, PaletteSize: src.PaletteSize}, nil
	}
}

// fetchWithFallback tries primary, then the cache at cachePath.
func fetchWithFallback(cachePath string, primary func() (*Theme, error)) (*Theme, error) {
	t, err := primary()
	if err == nil {
		if cacheErr := WriteCache(cachePath, t); cacheErr != nil {
			slog.Warn("failed to write theme cache", "error", cacheErr)
		}
		return t, nil
	}
	slog.Warn("theme source failed, trying cache", "error", err)

	t, cacheErr := ReadCache(cachePath)
	if cacheErr == nil {
		return t, fmt.Errorf("using cached theme: %w", err)
	}
	return nil, fmt.Errorf("all theme sources failed: primary: %w; cache: %w", err, cacheErr)
}

func fetchFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme file: %w", err)
	}
	defer f.Close()
	return decodeLimited(f, path)
}

func fetchURL(url string) (*Theme, error) {
	resp, err := getHTTPClient().Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return decodeLimited(resp.Body, url)
}

func decodeLimited(r io.Reader, origin string) (*Theme, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxThemeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", origin, err)
	}
	if len(body) > maxThemeBytes {
		return nil, fmt.Errorf("%s exceeds %d bytes", origin, maxThemeBytes)
	}
	t, unknown, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}
	if len(unknown) > 0 {
		slog.Warn("theme has unknown keys", "origin", origin, "keys", unknown)
	}
	return t, nil
}

// ///////////////////////////////////////////////
// Cache
// ///////////////////////////////////////////////

// WriteCache stores t at path.
func WriteCache(path string, t *Theme) error {
	if t == nil {
		return fmt.Errorf("theme is nil")
	}
	data, err := Encode(t)
	if err != nil {
		return err
	}
	return atomicfile.Write(path, data, 0o644)
}

// ReadCache loads a theme stored by [WriteCache].
func ReadCache(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme cache: %w", err)
	}
	t, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("theme cache: %w", err)
	}
	return t, nil
}
