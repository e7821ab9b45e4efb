package webdist

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// BuildConfig selects the package compiled for the browser and where
// the artifact lands.
type BuildConfig struct {
	// Package path passed to the Go toolchain, e.g. ./cmd/layered-web.
	Package string

	// Output path for the wasm binary.
	Artifact string
}

// Build compiles the configured package with GOOS=js GOARCH=wasm. The
// toolchain's exit status propagates unmodified as the returned error;
// its output goes to stderr.
func Build(ctx context.Context, cfg BuildConfig) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Artifact), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, "go", "build", "-trimpath", "-o", cfg.Artifact, cfg.Package)
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	log.Info("building wasm", "package", cfg.Package, "out", cfg.Artifact)
	return cmd.Run()
}

// Stage copies the wasm artifact and the Go wasm loader shim into
// webDir. Errors if the artifact is missing.
func Stage(artifact, webDir string) error {
	if _, err := os.Stat(artifact); err != nil {
		return fmt.Errorf("wasm artifact: %w", err)
	}
	if err := os.MkdirAll(webDir, 0o755); err != nil {
		return fmt.Errorf("create web dir: %w", err)
	}

	dst := filepath.Join(webDir, filepath.Base(artifact))
	if dst != artifact {
		if err := copyFile(artifact, dst); err != nil {
			return err
		}
	}

	shim := filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js")
	if _, err := os.Stat(shim); err != nil {
		// Go before 1.24 shipped the shim under misc/.
		shim = filepath.Join(runtime.GOROOT(), "misc", "wasm", "wasm_exec.js")
	}
	if _, err := os.Stat(shim); err == nil {
		if err := copyFile(shim, filepath.Join(webDir, "wasm_exec.js")); err != nil {
			return err
		}
	}

	log.Info("staged site", "dir", webDir)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	return out.Close()
}
