package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/roomlog/roomlog/internal/api"
	"github.com/roomlog/roomlog/internal/feed"
	"github.com/roomlog/roomlog/internal/logger"
	"github.com/roomlog/roomlog/internal/render"
)

// browserView is one collection tab: an infinite-scrolling table backed by
// a page loader.
type browserView struct {
	app        *App
	collection string
	loader     *feed.Loader
	table      *tview.Table
	layout     *tview.Flex
	trigger    scrollTrigger
	notice     string
}

func newBrowserView(app *App, collection string) *browserView {
	view := &browserView{
		app:        app,
		collection: collection,
	}

	view.loader = feed.NewLoader(view.fetchPage, app.config.PageSize)

	view.table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	view.table.SetBorder(true)
	view.table.SetTitle(fmt.Sprintf(" %s ", collection))
	view.table.SetSelectedStyle(tcell.StyleDefault.
		Background(app.styles.TableSelectedBg).
		Foreground(app.styles.TableSelectedFg))

	view.table.SetSelectionChangedFunc(func(row, _ int) {
		// Row 0 is the header; data rows start at 1.
		if view.trigger.Visible(row-1, view.loader.Len()) {
			view.fetchNext()
		}
	})

	view.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case '/':
			view.openFilterForm()

			return nil
		case 'c':
			view.clearFilters()

			return nil
		case 'n':
			view.openCreateForm()

			return nil
		case 'd':
			view.confirmDelete()

			return nil
		case 'r':
			view.reload()

			return nil
		}

		return event
	})

	view.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.table, 0, 1, true)

	return view
}

// fetchPage adapts the API client to the loader's fetch callback.
func (v *browserView) fetchPage(ctx context.Context, page, size int, q feed.Query) (api.Page, error) {
	return v.app.config.Client.SearchPage(ctx, v.collection, api.SearchOptions{
		Page:    page,
		Size:    size,
		Keyword: q.Keyword,
		Escaped: q.Escaped,
		From:    q.From,
		To:      q.To,
	})
}

// fetchNext requests the next page off the UI thread and redraws when it
// settles. The loader ignores the call if a fetch is already in flight or
// the session is exhausted.
func (v *browserView) fetchNext() {
	if v.loader.State() != feed.StateIdle {
		return
	}

	v.app.setStatus("[yellow]loading…[-]")

	go func() {
		err := v.loader.LoadNextPage(v.app.ctx)

		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.notice = fmt.Sprintf("load failed: %v", err)
			}

			v.refresh()
		})
	}()
}

// reload starts a new session with the current filter and fetches page zero.
func (v *browserView) reload() {
	v.loader.Reset()
	v.trigger.Reset()
	v.notice = ""
	v.refresh()
	v.fetchNext()
}

// applyQuery installs a new filter and refetches from the first page.
func (v *browserView) applyQuery(q feed.Query) {
	v.loader.SetQuery(q)
	v.trigger.Reset()
	v.notice = ""

	if v.app.config.Cache != nil && q.Keyword != "" {
		if err := v.app.config.Cache.RecordSearch(q.Keyword); err != nil {
			logger.Log.Debugf("Could not record search keyword: %v", err)
		}
	}

	v.refresh()
	v.fetchNext()
}

func (v *browserView) clearFilters() {
	if v.loader.Query().IsZero() {
		return
	}

	v.applyQuery(feed.Query{})
}

// refresh rebuilds the table from the accumulated items.
func (v *browserView) refresh() {
	selectedRow, _ := v.table.GetSelection()

	v.table.Clear()

	headers := []string{"Title", "Theme", "Store", "Date", "Outcome", "Rating"}
	for col, h := range headers {
		cell := tview.NewTableCell(h).
			SetTextColor(v.app.styles.TableHeaderFg).
			SetBackgroundColor(v.app.styles.TableHeaderBg).
			SetSelectable(false).
			SetExpansion(expansionFor(col))
		v.table.SetCell(0, col, cell)
	}

	items := v.loader.Items()

	for i, row := range render.BuildRows(items) {
		outcomeColor := v.app.styles.FgColor
		if row.Outcome == render.BadgeSuccess {
			outcomeColor = v.app.styles.OutcomeGood
		} else if row.Outcome == render.BadgeFail {
			outcomeColor = v.app.styles.OutcomeBad
		}

		v.table.SetCell(i+1, 0, tview.NewTableCell(row.Title).SetExpansion(2).SetReference(items[i].ID))
		v.table.SetCell(i+1, 1, tview.NewTableCell(row.Theme).SetExpansion(1))
		v.table.SetCell(i+1, 2, tview.NewTableCell(row.Store).SetExpansion(1))
		v.table.SetCell(i+1, 3, tview.NewTableCell(row.Date))
		v.table.SetCell(i+1, 4, tview.NewTableCell(row.Outcome).SetTextColor(outcomeColor))
		v.table.SetCell(i+1, 5, tview.NewTableCell(row.Stars))
	}

	if selectedRow > 0 && selectedRow < v.table.GetRowCount() {
		v.table.Select(selectedRow, 0)
	} else if v.table.GetRowCount() > 1 {
		v.table.Select(1, 0)
	}

	v.app.setStatus(v.statusLine())
}

func expansionFor(col int) int {
	if col == 0 {
		return 2
	}

	return 1
}

// statusLine summarizes the session for the bottom bar.
func (v *browserView) statusLine() string {
	count := v.loader.Len()
	state := v.loader.State()
	query := v.loader.Query()

	line := fmt.Sprintf("%s: %d loaded", v.collection, count)

	if total := v.loader.Total(); total >= 0 {
		line += fmt.Sprintf(" of %d", total)
	}

	line += "  filter: " + query.Describe()

	switch state {
	case feed.StateLoading:
		line += "  [yellow]loading…[-]"
	case feed.StateExhausted:
		if v.loader.Err() != nil {
			line += "  [red]" + v.notice + "[-]"
		} else {
			line += "  [gray]end of results[-]"
		}
	}

	return line
}

// selectedItem returns the item under the cursor, if any.
func (v *browserView) selectedItem() (api.Item, bool) {
	row, _ := v.table.GetSelection()
	if row <= 0 {
		return api.Item{}, false
	}

	cell := v.table.GetCell(row, 0)
	if cell == nil {
		return api.Item{}, false
	}

	id, ok := cell.GetReference().(int64)
	if !ok {
		return api.Item{}, false
	}

	for _, item := range v.loader.Items() {
		if item.ID == id {
			return item, true
		}
	}

	return api.Item{}, false
}
