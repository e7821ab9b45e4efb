// Package config provides YAML-based configuration for the game and the
// web deploy tooling.
package config

// Config is the root configuration document.
type Config struct {
	Game Game `yaml:"game"`
	Web  Web  `yaml:"web"`
}

// Game contains desktop game settings.
type Game struct {
	WindowWidth   int     `yaml:"window_width"`
	WindowHeight  int     `yaml:"window_height"`
	ViewportScale float64 `yaml:"viewport_scale"`
	TempoBPM      float64 `yaml:"tempo_bpm"`

	// Level generator seed; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`

	// Run history database path. ~ expands to the home directory.
	RunsDB string `yaml:"runs_db"`
}

// Web contains settings for building and staging the browser build.
type Web struct {
	// Upstream loader script URLs, fetched in order.
	LoaderURLs []string `yaml:"loader_urls"`

	// Directory where fetched loaders are staged before bundling.
	StagingDir string `yaml:"staging_dir"`

	// Package built with GOOS=js GOARCH=wasm.
	BuildPackage string `yaml:"build_package"`

	// wasm artifact path produced by the build.
	Artifact string `yaml:"artifact"`

	// Directory the site is assembled into.
	WebDir string `yaml:"web_dir"`

	// Listen address for the local static server.
	ServeAddr string `yaml:"serve_addr"`
}
