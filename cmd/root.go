// Package cmd provides the command-line interface for roomlog.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/logger"
)

var (
	logLevel    string
	serverFlag  string
	sessionFlag string
)

var rootCmd = &cobra.Command{
	Use:   "roomlog",
	Short: "Browse your escape room diary from the terminal",
	Long: `roomlog is a terminal client for an escape room diary service.

It lists, filters, creates and deletes diary entries (plays of a room) and
party events (group recruitment posts), either as one-shot commands or in
an interactive infinite-scrolling browser.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logger.SetLevel(logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s': %v\n", logLevel, err)
			os.Exit(1)
		}
	},
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Backend server URL (defaults to ROOMLOG_SERVER or the config file)")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", "", "Session cookie value (defaults to ROOMLOG_SESSION or the config file)")

	rootCmd.AddCommand(diaryCmd)
	rootCmd.AddCommand(partyCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}
