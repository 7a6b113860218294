package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/cache"
	"github.com/roomlog/roomlog/internal/logger"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the offline cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show offline cache contents",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := cache.New()
		if err != nil {
			logger.Log.Fatalf("Failed to open cache: %v", err)
		}
		defer store.Close()

		stats, err := store.Stats()
		if err != nil {
			logger.Log.Fatalf("Failed to collect cache stats: %v", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendRow(table.Row{"Path", stats.Path})
		t.AppendRow(table.Row{"Size", fmt.Sprintf("%d bytes", stats.SizeBytes)})
		t.AppendRow(table.Row{"Saved searches", stats.SearchCount})

		for collection, count := range stats.ItemCounts {
			line := fmt.Sprintf("%d items", count)
			if at, ok := stats.SnapshotTimes[collection]; ok {
				line += ", fetched " + at.Format("2006-01-02 15:04")
			}

			t.AppendRow(table.Row{collection, line})
		}

		t.Render()
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached snapshots and search history",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := cache.New()
		if err != nil {
			logger.Log.Fatalf("Failed to open cache: %v", err)
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			logger.Log.Fatalf("Failed to clear cache: %v", err)
		}

		logger.Log.Info("Cache cleared")
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
