package main

import (
	"github.com/spf13/cobra"

	"layered/internal/webdist"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the staged site locally",
	Run:   runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	addr := flagAddr
	if addr == "" {
		addr = cfg.Web.ServeAddr
	}

	if err := webdist.Serve(addr, cfg.Web.WebDir); err != nil {
		fail(err)
	}
}
