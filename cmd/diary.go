package cmd

import (
	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/api"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Manage escape room diary entries",
	Long:  "List, create and delete diary entries (one entry per played room).",
}

func init() {
	diaryCmd.AddCommand(newListCmd(api.CollectionDiaries))
	diaryCmd.AddCommand(newCreateCmd(api.CollectionDiaries))
	diaryCmd.AddCommand(newDeleteCmd(api.CollectionDiaries))
}
