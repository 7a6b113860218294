// Package tui implements the interactive browser for diary and party
// collections: an infinite-scrolling table per collection with filter,
// create, and delete actions.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"

	"github.com/roomlog/roomlog/internal/api"
	"github.com/roomlog/roomlog/internal/cache"
	"github.com/roomlog/roomlog/internal/logger"
)

// Config holds the browser's collaborators.
type Config struct {
	Client   *api.Client
	Cache    *cache.Cache
	PageSize int
}

// App is the interactive browser application.
type App struct {
	*tview.Application
	config  *Config
	styles  *Styles
	pages   *tview.Pages
	header  *tview.TextView
	status  *tview.TextView
	views   map[string]*browserView
	order   []string
	current int
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewApp builds the browser with one tab per collection.
func NewApp(ctx context.Context, config *Config) *App {
	ctx, cancel := context.WithCancel(ctx)

	app := &App{
		Application: tview.NewApplication(),
		config:      config,
		styles:      DefaultStyles(),
		views:       make(map[string]*browserView),
		order:       []string{api.CollectionDiaries, api.CollectionParties},
		ctx:         ctx,
		cancel:      cancel,
	}

	app.EnableMouse(true)
	app.buildUI()
	app.setupGlobalKeys()

	return app
}

func (a *App) buildUI() {
	a.header = tview.NewTextView().SetDynamicColors(true)
	a.status = tview.NewTextView().SetDynamicColors(true)
	a.pages = tview.NewPages()

	for _, collection := range a.order {
		view := newBrowserView(a, collection)
		a.views[collection] = view
		a.pages.AddPage(collection, view.layout, true, collection == a.order[0])
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.SetRoot(root, true)
	a.updateHeader()
}

func (a *App) setupGlobalKeys() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Let forms and modals handle their own input.
		if name, _ := a.pages.GetFrontPage(); name != a.currentCollection() {
			return event
		}

		switch event.Key() {
		case tcell.KeyCtrlC:
			a.Stop()

			return nil
		case tcell.KeyTab:
			a.switchTab()

			return nil
		}

		switch event.Rune() {
		case 'q':
			a.Stop()

			return nil
		case '1':
			a.showTab(0)

			return nil
		case '2':
			a.showTab(1)

			return nil
		}

		return event
	})
}

// Run primes the first page of every collection concurrently, then enters
// the UI event loop.
func (a *App) Run() error {
	defer a.cancel()

	group, ctx := errgroup.WithContext(a.ctx)

	for _, collection := range a.order {
		view := a.views[collection]

		group.Go(func() error {
			// Priming failures are shown in the view, not fatal.
			if err := view.loader.LoadNextPage(ctx); err != nil {
				logger.Log.Debugf("Priming %s failed: %v", collection, err)
			}

			return nil
		})
	}

	_ = group.Wait()

	for _, view := range a.views {
		view.refresh()
	}

	return a.Application.Run()
}

func (a *App) currentCollection() string {
	return a.order[a.current]
}

func (a *App) currentView() *browserView {
	return a.views[a.currentCollection()]
}

func (a *App) switchTab() {
	a.showTab((a.current + 1) % len(a.order))
}

func (a *App) showTab(index int) {
	if index < 0 || index >= len(a.order) {
		return
	}

	a.current = index
	a.pages.SwitchToPage(a.currentCollection())
	a.updateHeader()
	a.currentView().refresh()
}

func (a *App) updateHeader() {
	text := ""

	for i, collection := range a.order {
		label := fmt.Sprintf(" %d:%s ", i+1, collection)
		if i == a.current {
			text += "[black:darkcyan]" + label + "[-:-]"
		} else {
			text += label
		}
	}

	text += "  [gray]tab switch  / filter  c clear  n new  d delete  r reload  q quit[-]"
	a.header.SetText(text)
}

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

// flashError shows a blocking notice for failed create/delete actions.
func (a *App) flashError(message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			a.pages.RemovePage("error")
			a.SetFocus(a.currentView().table)
		})

	a.pages.AddPage("error", modal, true, true)
}
