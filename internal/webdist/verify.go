package webdist

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
)

// Verify compile-checks the wasm artifact before it ships. The deploy
// surfaces wazero's own failure rather than classifying it.
func Verify(ctx context.Context, wasmPath string) error {
	data, err := os.ReadFile(wasmPath)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig())
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return fmt.Errorf("verify %s: %w", wasmPath, err)
	}
	return compiled.Close(ctx)
}
