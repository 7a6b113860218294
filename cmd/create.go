package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/feed"
	"github.com/roomlog/roomlog/internal/logger"
	"github.com/roomlog/roomlog/internal/render"
)

// newCreateCmd builds the create subcommand for one collection.
func newCreateCmd(collection string) *cobra.Command {
	var (
		title        string
		theme        string
		store        string
		dateStr      string
		outcome      string
		rating       float64
		members      []string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a new %s entry", commandName(collection)),
		Long: fmt.Sprintf(`Create a new record in %[1]s.

The record is validated locally before anything is sent; a rejected draft
never reaches the network.

Examples:
  roomlog %[2]s create --title "Midnight heist" --theme "The Vault" \
    --store "Escape Lab" --date 2026-08-20 --outcome escaped --rating 4.5`, collection, commandName(collection)),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				logger.Log.Fatalf("Invalid --date: %v", err)
			}

			escaped, err := parseOutcome(outcome)
			if err != nil {
				logger.Log.Fatalf("Invalid --outcome: %v", err)
			}

			var ratingPtr *float64
			if cmd.Flags().Changed("rating") {
				ratingPtr = &rating
			}

			draft := feed.Draft{
				Title:   title,
				Theme:   theme,
				Store:   store,
				Date:    date,
				Escaped: escaped,
				Rating:  ratingPtr,
				Members: members,
			}

			format := render.DefaultFormat(outputFormat, []string{render.FormatTable, render.FormatJSON})
			runCreate(cmd.Context(), collection, draft, format)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&theme, "theme", "", "Room theme name")
	cmd.Flags().StringVar(&store, "store", "", "Store the room belongs to")
	cmd.Flags().StringVar(&dateStr, "date", "", "Play date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outcome, "outcome", "any", "Outcome (escaped, failed)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Star rating from 0 to 5")
	cmd.Flags().StringSliceVar(&members, "member", nil, "Party member (repeatable)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", render.FormatTable, "Output format (table, json)")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("theme")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runCreate(ctx context.Context, collection string, draft feed.Draft, format string) {
	if err := draft.Validate(); err != nil {
		logger.Log.Fatalf("Draft rejected: %v", err)
	}

	client, _, err := buildClient()
	if err != nil {
		logger.Log.Fatalf("Failed to create API client: %v", err)
	}

	created, err := client.Create(ctx, collection, draft.Item())
	if err != nil {
		logger.Log.Fatalf("Create failed: %v", err)
	}

	logger.Log.Infof("Created %s entry #%d", commandName(collection), created.ID)

	if err := render.DisplayItem(created, format); err != nil {
		logger.Log.Fatalf("Failed to render output: %v", err)
	}
}
