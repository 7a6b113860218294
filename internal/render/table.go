package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/roomlog/roomlog/internal/api"
)

// DisplayItems renders an accumulated item list to stdout in the requested
// format. When fromCache is true the header notes that rows came from the
// offline cache rather than the backend.
func DisplayItems(items []api.Item, collection, format string, fromCache bool) error {
	switch format {
	case FormatJSON:
		return displayJSON(items)
	case FormatText:
		displayText(items)

		return nil
	default:
		displayTable(items, collection, fromCache)

		return nil
	}
}

func displayJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func displayText(items []api.Item) {
	for _, row := range BuildRows(items) {
		fmt.Printf("%d  %s  %s  %s  %s %s\n", row.ID, row.Date, row.Title, row.Theme, row.Outcome, row.Stars)
	}
}

func displayTable(items []api.Item, collection string, fromCache bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	title := collection
	if fromCache {
		title += " (cached)"
	}

	t.SetTitle(title)
	t.AppendHeader(table.Row{"ID", "Title", "Theme", "Store", "Date", "Outcome", "Rating"})

	width := titleWidth()

	for _, row := range BuildRows(items) {
		t.AppendRow(table.Row{
			row.ID,
			Truncate(row.Title, width),
			row.Theme,
			row.Store,
			row.Date,
			colorizeOutcome(row),
			row.Stars,
		})
	}

	t.Render()
}

func colorizeOutcome(row Row) string {
	switch {
	case row.Outcome == badgeNone:
		return row.Outcome
	case row.Good:
		return text.FgGreen.Sprint(row.Outcome)
	default:
		return text.FgRed.Sprint(row.Outcome)
	}
}

// DisplayItem renders one record, used after a successful create.
func DisplayItem(item api.Item, format string) error {
	if format == FormatJSON {
		return displayJSON(item)
	}

	row := BuildRow(item)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"ID", row.ID})
	t.AppendRow(table.Row{"Title", row.Title})
	t.AppendRow(table.Row{"Theme", row.Theme})
	t.AppendRow(table.Row{"Store", row.Store})
	t.AppendRow(table.Row{"Date", row.Date})
	t.AppendRow(table.Row{"Outcome", colorizeOutcome(row)})
	t.AppendRow(table.Row{"Rating", row.Stars})
	t.Render()

	return nil
}
