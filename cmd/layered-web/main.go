//go:build js && wasm

package main

import (
	"fmt"
	"os"
	"time"

	"layered/internal/game"
)

func main() {
	if err := game.RunWeb(uint64(time.Now().UnixNano())); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
