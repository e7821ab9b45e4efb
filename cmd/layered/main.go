// layered is a 2.5D jam game plus the tooling that ships its browser
// build.
//
// Usage:
//
//	layered play     - Run the desktop game
//	layered deploy   - Fetch loaders, build the wasm binary, and stage the site
//	layered serve    - Serve the staged site locally
//	layered runs     - Show the fastest recorded runs per level
//
// Global flags:
//
//	--config <path>  - Explicit config file (default: search order)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"layered/internal/config"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "layered",
	Short: "Layered - dimetric jam game and web deploy tooling",
	Long: `Layered is a 2.5D dimetric puzzle game: pulse through the fog,
light up the objectives, and the soundtrack layers in as you find them.

Available commands:
  play     - Run the desktop game
  deploy   - Build and stage the browser version
  serve    - Serve the staged site locally
  runs     - Show the fastest recorded runs

Examples:
  layered play
  layered deploy
  layered serve
  layered runs --level 3`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
