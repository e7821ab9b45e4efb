package config

import (
	_ "embed"
)

//go:embed defaults/layered.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when even the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Game: Game{
			WindowWidth:   800,
			WindowHeight:  600,
			ViewportScale: 6.0,
			TempoBPM:      80,
			RunsDB:        "~/.layered/runs.db",
		},
		Web: Web{
			LoaderURLs: []string{
				"https://raw.githubusercontent.com/golang/go/release-branch.go1.25/lib/wasm/wasm_exec.js",
			},
			StagingDir:   "web/vendor",
			BuildPackage: "./cmd/layered-web",
			Artifact:     "web/layered.wasm",
			WebDir:       "web",
			ServeAddr:    "localhost:8080",
		},
	}
}
