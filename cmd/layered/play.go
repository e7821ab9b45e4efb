package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"layered/internal/game"
	"layered/internal/storage"
)

var flagSeed uint64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the desktop game",
	Long: `Run the desktop game.

Hold the left mouse button or use WASD to move, space to emit a pulse,
enter to start and advance between levels, escape to quit.`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Level generator seed (0 = from config or clock)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	seed := flagSeed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Run history is optional; play on without it.
	var onRun func(game.RunRecord)
	store, err := storage.Open(cfg.Game.RunsDB)
	if err != nil {
		log.Warn("run history unavailable", "err", err)
	} else {
		defer store.Close()
		onRun = func(r game.RunRecord) {
			if _, err := store.SaveRun(storage.Run{
				Level:   r.Level,
				Seed:    r.Seed,
				Seconds: r.Seconds,
				Pulses:  r.Pulses,
			}); err != nil {
				log.Warn("saving run", "err", err)
			}
		}
	}

	err = game.RunDesktop(game.DesktopOptions{
		WindowWidth:   cfg.Game.WindowWidth,
		WindowHeight:  cfg.Game.WindowHeight,
		ViewportScale: cfg.Game.ViewportScale,
		TempoBPM:      cfg.Game.TempoBPM,
		Seed:          seed,
		OnRun:         onRun,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
