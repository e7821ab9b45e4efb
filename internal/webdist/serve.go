package webdist

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const loadersTag = "<script src=\"loaders.js\"></script>\n"

// %s is the optional loader-bundle script tag, ahead of the wasm
// runtime so bundled shims are in place before the game boots.
const indexFormat = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Layered</title>
<style>html,body{margin:0;background:#13150f}canvas{display:block;margin:0 auto}</style>
</head>
<body>
<canvas id="game" width="800" height="600"></canvas>
%s<script src="wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("layered.wasm"), go.importObject)
	.then((result) => go.run(result.instance));
</script>
</body>
</html>
`

// EnsureIndex writes a bootstrap index.html into webDir unless one is
// already there. withLoaders includes the bundled loader scripts in
// the page.
func EnsureIndex(webDir string, withLoaders bool) error {
	index := filepath.Join(webDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	tag := ""
	if withLoaders {
		tag = loadersTag
	}
	page := fmt.Sprintf(indexFormat, tag)
	if err := os.WriteFile(index, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Serve hosts the staged site on addr, writing a default index.html
// first if the directory has none. Blocks until the server fails.
func Serve(addr, webDir string) error {
	_, err := os.Stat(filepath.Join(webDir, "loaders.js"))
	if err := EnsureIndex(webDir, err == nil); err != nil {
		return err
	}

	log.Info("serving", "addr", addr, "dir", webDir)
	return http.ListenAndServe(addr, http.FileServer(http.Dir(webDir)))
}
