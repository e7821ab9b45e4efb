package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"layered/internal/webdist"
)

var flagSkipFetch bool

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build and stage the browser version",
	Long: `Build and stage the browser version.

Steps: fetch the vendored loader scripts, bundle them, compile the wasm
binary, verify it, and copy everything into the web directory.`,
	Run: runDeploy,
}

func init() {
	deployCmd.Flags().BoolVar(&flagSkipFetch, "skip-fetch", false, "Reuse already-staged loader scripts")
}

func runDeploy(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	ctx := cmd.Context()
	web := cfg.Web

	if !flagSkipFetch && len(web.LoaderURLs) > 0 {
		log.Info("fetching loaders", "count", len(web.LoaderURLs))
		if err := webdist.FetchLoaders(ctx, nil, web.LoaderURLs, web.StagingDir); err != nil {
			fail(err)
		}
	}

	bundled := false
	if len(web.LoaderURLs) > 0 {
		names, err := webdist.LoaderNames(web.LoaderURLs)
		if err != nil {
			fail(err)
		}
		bundle := filepath.Join(web.WebDir, "loaders.js")
		if err := webdist.BundleLoaders(web.StagingDir, names, bundle); err != nil {
			fail(err)
		}
		bundled = true
	}

	if err := webdist.Build(ctx, webdist.BuildConfig{
		Package:  web.BuildPackage,
		Artifact: web.Artifact,
	}); err != nil {
		fail(err)
	}

	if err := webdist.Verify(ctx, web.Artifact); err != nil {
		fail(err)
	}

	if err := webdist.Stage(web.Artifact, web.WebDir); err != nil {
		fail(err)
	}

	if err := webdist.EnsureIndex(web.WebDir, bundled); err != nil {
		fail(err)
	}

	log.Info("deploy complete", "dir", web.WebDir)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
