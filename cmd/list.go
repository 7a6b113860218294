package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roomlog/roomlog/internal/api"
	"github.com/roomlog/roomlog/internal/cache"
	"github.com/roomlog/roomlog/internal/feed"
	"github.com/roomlog/roomlog/internal/logger"
	"github.com/roomlog/roomlog/internal/render"
)

const dateFlagFormat = "2006-01-02"

// newListCmd builds the list subcommand for one collection.
func newListCmd(collection string) *cobra.Command {
	var (
		keyword      string
		outcome      string
		fromStr      string
		toStr        string
		limit        int
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", collection),
		Long: fmt.Sprintf(`List %[1]s from the backend, newest first.

Results are fetched page by page; use --limit to stop early. When the
backend is unreachable and no filter is active, the last cached snapshot
is shown instead.

Examples:
  # List everything
  roomlog %[2]s list

  # Filter by keyword and outcome
  roomlog %[2]s list --keyword "prison" --outcome escaped

  # Only entries from March 2026, as JSON
  roomlog %[2]s list --from 2026-03-01 --to 2026-03-31 --output json`, collection, commandName(collection)),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			query, err := buildQuery(keyword, outcome, fromStr, toStr)
			if err != nil {
				logger.Log.Fatalf("Invalid filter: %v", err)
			}

			format := render.DefaultFormat(outputFormat, []string{render.FormatTable, render.FormatJSON, render.FormatText})
			runList(cmd.Context(), collection, query, limit, format)
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "Filter by keyword in title, theme or store")
	cmd.Flags().StringVar(&outcome, "outcome", "any", "Filter by outcome (any, escaped, failed)")
	cmd.Flags().StringVar(&fromStr, "from", "", "Only entries on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Only entries on or before this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many entries (0 = all)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", render.FormatTable, "Output format (table, json, text)")

	return cmd
}

func buildQuery(keyword, outcome, fromStr, toStr string) (feed.Query, error) {
	escaped, err := parseOutcome(outcome)
	if err != nil {
		return feed.Query{}, err
	}

	from, err := parseDateFlag(fromStr)
	if err != nil {
		return feed.Query{}, fmt.Errorf("invalid --from date: %w", err)
	}

	to, err := parseDateFlag(toStr)
	if err != nil {
		return feed.Query{}, fmt.Errorf("invalid --to date: %w", err)
	}

	query := feed.Query{Keyword: keyword, Escaped: escaped, From: from, To: to}
	if err := query.Validate(); err != nil {
		return feed.Query{}, err
	}

	return query, nil
}

func parseOutcome(outcome string) (*bool, error) {
	switch outcome {
	case "", "any":
		return nil, nil
	case "escaped", "success":
		val := true

		return &val, nil
	case "failed", "fail":
		val := false

		return &val, nil
	default:
		return nil, fmt.Errorf("unknown outcome %q (want any, escaped or failed)", outcome)
	}
}

func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateFlagFormat, s)
}

func runList(ctx context.Context, collection string, query feed.Query, limit int, format string) {
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

	loader := feed.NewLoader(func(ctx context.Context, page, size int, q feed.Query) (api.Page, error) {
		return client.SearchPage(ctx, collection, api.SearchOptions{
			Page:    page,
			Size:    size,
			Keyword: q.Keyword,
			Escaped: q.Escaped,
			From:    q.From,
			To:      q.To,
		})
	}, cfg.PageSize)

	loader.SetQuery(query)

	spin := render.NewSpinner(fmt.Sprintf("Fetching %s", collection))
	spin.Start()

	items, err := loader.LoadAll(ctx, limit)
	if err != nil {
		spin.Fail(fmt.Sprintf("Fetch stopped: %v", err))

		// A transport failure with no filter falls back to the offline
		// snapshot; partial results from a later page failure still show.
		if len(items) == 0 && api.IsTransport(err) && query.IsZero() {
			showCached(store, collection, format)

			return
		}
	} else {
		spin.Stop()
	}

	if store != nil && query.IsZero() && loader.Err() == nil && len(items) > 0 {
		if err := store.SaveItems(collection, items); err != nil {
			logger.Log.Debugf("Could not update cache snapshot: %v", err)
		}
	}

	if store != nil && query.Keyword != "" {
		if err := store.RecordSearch(query.Keyword); err != nil {
			logger.Log.Debugf("Could not record search keyword: %v", err)
		}
	}

	if err := render.DisplayItems(items, collection, format, false); err != nil {
		logger.Log.Fatalf("Failed to render output: %v", err)
	}
}

func showCached(store *cache.Cache, collection, format string) {
	if store == nil {
		logger.Log.Fatal("Backend unreachable and no cache available")
	}

	items, fetchedAt, err := store.LoadItems(collection)
	if err != nil || len(items) == 0 {
		logger.Log.Fatal("Backend unreachable and no cached snapshot to show")
	}

	logger.Log.Warnf("Showing cached snapshot from %s", fetchedAt.Format(time.RFC822))

	if err := render.DisplayItems(items, collection, format, true); err != nil {
		logger.Log.Fatalf("Failed to render output: %v", err)
	}
}

// commandName maps a collection to its command spelling.
func commandName(collection string) string {
	switch collection {
	case api.CollectionDiaries:
		return "diary"
	case api.CollectionParties:
		return "party"
	default:
		return collection
	}
}
