package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/logger"
)

// newDeleteCmd builds the delete subcommand for one collection.
func newDeleteCmd(collection string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s entry", commandName(collection)),
		Long: fmt.Sprintf(`Delete one record from %[1]s by id.

You will be prompted for confirmation unless --yes is given.

Examples:
  roomlog %[2]s delete 1234
  roomlog %[2]s delete 1234 --yes`, collection, commandName(collection)),
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				logger.Log.Fatalf("Invalid id %q: %v", args[0], err)
			}

			runDelete(cmd.Context(), collection, id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(ctx context.Context, collection string, id int64, yes bool) {
	if !yes && !confirmDeletion(collection, id) {
		logger.Log.Info("Deletion canceled")

		return
	}

	client, _, err := buildClient()
	if err != nil {
		logger.Log.Fatalf("Failed to create API client: %v", err)
	}

	if err := client.Delete(ctx, collection, id); err != nil {
		logger.Log.Fatalf("Delete failed: %v", err)
	}

	logger.Log.Infof("Deleted %s entry #%d", commandName(collection), id)
}

func confirmDeletion(collection string, id int64) bool {
	fmt.Fprintf(os.Stderr, "Delete %s entry #%d? [y/N]: ", commandName(collection), id)

	reader := bufio.NewReader(os.Stdin)

	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}
