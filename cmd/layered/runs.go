package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"layered/internal/storage"
)

var (
	flagRunsLevel int
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the fastest recorded runs",
	Long: `Show the fastest recorded runs, per level.

Examples:
  layered runs
  layered runs --level 3 --limit 5`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLevel, "level", 0, "Only show this level (0 = all)")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Runs shown per level")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Game.RunsDB)
	if err != nil {
		fail(err)
	}
	defer store.Close()

	levels := []int{flagRunsLevel}
	if flagRunsLevel == 0 {
		levels, err = store.Levels()
		if err != nil {
			fail(err)
		}
	}

	if len(levels) == 0 {
		fmt.Println("No runs recorded yet. Play 'layered play' to set one.")
		return
	}

	for _, level := range levels {
		runs, err := store.BestRuns(level, flagRunsLimit)
		if err != nil {
			fail(err)
		}

		fmt.Printf("Level %d\n", level)
		if len(runs) == 0 {
			fmt.Println("  no runs")
			continue
		}
		fmt.Printf("  %-4s  %-9s  %-7s  %s\n", "Rank", "Time", "Pulses", "Date")
		for i, r := range runs {
			fmt.Printf("  %-4d  %8.2fs  %-7d  %s\n",
				i+1, r.Seconds, r.Pulses, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
}
