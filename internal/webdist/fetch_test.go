package webdist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchLoaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/js/gl.js":
			w.Write([]byte("// gl"))
		case "/js/audio.js":
			w.Write([]byte("// audio"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	urls := []string{srv.URL + "/js/gl.js", srv.URL + "/js/audio.js"}

	if err := FetchLoaders(context.Background(), srv.Client(), urls, dir); err != nil {
		t.Fatalf("FetchLoaders: %v", err)
	}

	for _, name := range []string{"gl.js", "audio.js"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("staged file %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("staged file %s is empty", name)
		}
	}
}

func TestFetchLoadersStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := FetchLoaders(context.Background(), srv.Client(), []string{srv.URL + "/missing.js"}, t.TempDir())
	if err == nil {
		t.Fatal("expected error for 404 loader")
	}
}

func TestLoaderNames(t *testing.T) {
	names, err := LoaderNames([]string{
		"https://example.com/a/gl.js",
		"https://example.com/audio.js",
	})
	if err != nil {
		t.Fatalf("LoaderNames: %v", err)
	}
	if names[0] != "gl.js" || names[1] != "audio.js" {
		t.Fatalf("names = %v", names)
	}

	if _, err := LoaderNames([]string{"https://example.com/"}); err == nil {
		t.Fatal("expected error for URL without filename")
	}
}

func TestBundleLoaders(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.js": "var a = 1;",
		"b.js": "var b = 2;",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out := filepath.Join(t.TempDir(), "bundle.js")
	if err := BundleLoaders(dir, []string{"a.js", "b.js"}, out); err != nil {
		t.Fatalf("BundleLoaders: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "(function() {") || !strings.HasSuffix(s, "})();\n") {
		t.Fatalf("bundle not wrapped: %q", s)
	}
	// Order preserved.
	if strings.Index(s, "var a") > strings.Index(s, "var b") {
		t.Fatal("bundle out of order")
	}
}

func TestBundleLoadersMissingFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bundle.js")
	if err := BundleLoaders(t.TempDir(), []string{"nope.js"}, out); err == nil {
		t.Fatal("expected error for missing loader")
	}
}
