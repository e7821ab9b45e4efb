// Package webdist builds and stages the browser distribution: fetches
// the vendored loader scripts, compiles the wasm binary, verifies it,
// and assembles the static site directory.
package webdist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FetchLoaders downloads the loader scripts into dir, keeping each
// URL's base filename. No retries; a failed fetch fails the deploy.
func FetchLoaders(ctx context.Context, client *http.Client, urls []string, dir string) error {
	if client == nil {
		client = http.DefaultClient
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	for _, raw := range urls {
		name, err := loaderName(raw)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", raw, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", raw, err)
		}

		err = writeLoader(filepath.Join(dir, name), resp)
		resp.Body.Close()
		if err != nil {
			return err
		}
		log.Debug("fetched loader", "url", raw, "file", name)
	}
	return nil
}

// LoaderNames maps loader URLs to their staged filenames, in order.
func LoaderNames(urls []string) ([]string, error) {
	names := make([]string, 0, len(urls))
	for _, raw := range urls {
		name, err := loaderName(raw)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func loaderName(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse loader url %s: %w", raw, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("loader url %s has no filename", raw)
	}
	return name, nil
}

func writeLoader(dst string, resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %s", resp.Request.URL, resp.Status)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return f.Close()
}

// BundleLoaders concatenates the staged loader scripts, in the order
// given, into a single IIFE-wrapped file at out.
func BundleLoaders(dir string, names []string, out string) error {
	var b strings.Builder
	b.WriteString("(function() {\n")
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("bundle %s: %w", name, err)
		}
		b.Write(data)
		b.WriteString("\n")
	}
	b.WriteString("})();\n")

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create bundle dir: %w", err)
	}
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write bundle %s: %w", out, err)
	}
	log.Debug("bundled loaders", "count", len(names), "out", out)
	return nil
}
