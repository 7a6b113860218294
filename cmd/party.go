package cmd

import (
	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/api"
)

var partyCmd = &cobra.Command{
	Use:   "party",
	Short: "Manage party events",
	Long:  "List, create and delete party events (group recruitment posts).",
}

func init() {
	partyCmd.AddCommand(newListCmd(api.CollectionParties))
	partyCmd.AddCommand(newCreateCmd(api.CollectionParties))
	partyCmd.AddCommand(newDeleteCmd(api.CollectionParties))
}
