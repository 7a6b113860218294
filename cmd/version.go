package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()

		fmt.Printf("roomlog %s\n", info.Version)
		fmt.Printf("  commit:     %s\n", info.Commit)
		fmt.Printf("  built:      %s\n", info.BuildDate)
		fmt.Printf("  platform:   %s\n", info.Platform)
		fmt.Printf("  go version: %s\n", info.GoVersion)
	},
}
