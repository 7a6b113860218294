package cmd

import (
	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/cache"
	"github.com/roomlog/roomlog/internal/logger"
	"github.com/roomlog/roomlog/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"browse", "ui"},
	Short:   "Browse diaries and parties interactively",
	Long: `Open the interactive browser: one infinite-scrolling tab per
collection, with filtering (/), creation (n) and deletion (d) in place.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := buildClient()
		if err != nil {
			logger.Log.Fatalf("Failed to create API client: %v", err)
		}

		store, err := cache.New()
		if err != nil {
			logger.Log.Debugf("Cache unavailable: %v", err)
			store = nil
		}

		if store != nil {
			defer store.Close()
		}

		app := tui.NewApp(cmd.Context(), &tui.Config{
			Client:   client,
			Cache:    store,
			PageSize: cfg.PageSize,
		})

		if err := app.Run(); err != nil {
			logger.Log.Fatalf("Interactive browser failed: %v", err)
		}
	},
}
