package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/roomlog/roomlog/internal/feed"
)

const (
	filterPageName = "filter"
	createPageName = "create"

	dateInputFormat = "2006-01-02"
)

// outcome dropdown labels, index-aligned with their tri-state meaning.
var outcomeOptions = []string{"any", "escaped", "failed"}

func outcomeFromIndex(index int) *bool {
	switch index {
	case 1:
		val := true

		return &val
	case 2:
		val := false

		return &val
	default:
		return nil
	}
}

func indexFromOutcome(escaped *bool) int {
	switch {
	case escaped == nil:
		return 0
	case *escaped:
		return 1
	default:
		return 2
	}
}

// openFilterForm shows the filter editor pre-filled with the active query.
func (v *browserView) openFilterForm() {
	current := v.loader.Query()

	form := tview.NewForm()
	form.SetBorder(true)
	form.SetTitle(" filter " + v.collection + " ")

	form.AddInputField("Keyword", current.Keyword, 30, nil, nil)
	form.AddDropDown("Outcome", outcomeOptions, indexFromOutcome(current.Escaped), nil)
	form.AddInputField("From (YYYY-MM-DD)", formatDateInput(current.From), 12, nil, nil)
	form.AddInputField("To (YYYY-MM-DD)", formatDateInput(current.To), 12, nil, nil)

	dismiss := func() {
		v.app.pages.RemovePage(filterPageName)
		v.app.SetFocus(v.table)
	}

	form.AddButton("Apply", func() {
		query, err := queryFromForm(form)
		if err != nil {
			v.app.flashError(err.Error())

			return
		}

		dismiss()
		v.applyQuery(query)
	})

	form.AddButton("Clear", func() {
		dismiss()
		v.applyQuery(feed.Query{})
	})

	form.AddButton("Cancel", func() {
		dismiss()
	})

	v.app.pages.AddPage(filterPageName, centered(form, 50, 13), true, true)
	v.app.SetFocus(form)
}

func queryFromForm(form *tview.Form) (feed.Query, error) {
	keyword := form.GetFormItem(0).(*tview.InputField).GetText()
	outcomeIndex, _ := form.GetFormItem(1).(*tview.DropDown).GetCurrentOption()
	fromText := form.GetFormItem(2).(*tview.InputField).GetText()
	toText := form.GetFormItem(3).(*tview.InputField).GetText()

	from, err := parseDateInput(fromText)
	if err != nil {
		return feed.Query{}, fmt.Errorf("invalid from date: %w", err)
	}

	to, err := parseDateInput(toText)
	if err != nil {
		return feed.Query{}, fmt.Errorf("invalid to date: %w", err)
	}

	query := feed.Query{
		Keyword: strings.TrimSpace(keyword),
		Escaped: outcomeFromIndex(outcomeIndex),
		From:    from,
		To:      to,
	}

	if err := query.Validate(); err != nil {
		return feed.Query{}, err
	}

	return query, nil
}

// openCreateForm shows the new-record editor.
func (v *browserView) openCreateForm() {
	form := tview.NewForm()
	form.SetBorder(true)
	form.SetTitle(" new " + v.collection + " entry ")

	form.AddInputField("Title", "", 40, nil, nil)
	form.AddInputField("Theme", "", 40, nil, nil)
	form.AddInputField("Store", "", 40, nil, nil)
	form.AddInputField("Date (YYYY-MM-DD)", time.Now().Format(dateInputFormat), 12, nil, nil)
	form.AddDropDown("Outcome", outcomeOptions, 0, nil)
	form.AddInputField("Rating (0-5)", "", 4, nil, nil)

	dismiss := func() {
		v.app.pages.RemovePage(createPageName)
		v.app.SetFocus(v.table)
	}

	form.AddButton("Create", func() {
		draft, err := draftFromForm(form)
		if err != nil {
			v.app.flashError(err.Error())

			return
		}

		dismiss()
		v.createItem(draft)
	})

	form.AddButton("Cancel", func() {
		dismiss()
	})

	v.app.pages.AddPage(createPageName, centered(form, 56, 17), true, true)
	v.app.SetFocus(form)
}

func draftFromForm(form *tview.Form) (feed.Draft, error) {
	title := form.GetFormItem(0).(*tview.InputField).GetText()
	theme := form.GetFormItem(1).(*tview.InputField).GetText()
	store := form.GetFormItem(2).(*tview.InputField).GetText()
	dateText := form.GetFormItem(3).(*tview.InputField).GetText()
	outcomeIndex, _ := form.GetFormItem(4).(*tview.DropDown).GetCurrentOption()
	ratingText := strings.TrimSpace(form.GetFormItem(5).(*tview.InputField).GetText())

	date, err := parseDateInput(dateText)
	if err != nil {
		return feed.Draft{}, fmt.Errorf("invalid date: %w", err)
	}

	var rating *float64

	if ratingText != "" {
		value, err := strconv.ParseFloat(ratingText, 64)
		if err != nil {
			return feed.Draft{}, fmt.Errorf("invalid rating: %w", err)
		}

		rating = &value
	}

	draft := feed.Draft{
		Title:   strings.TrimSpace(title),
		Theme:   strings.TrimSpace(theme),
		Store:   strings.TrimSpace(store),
		Date:    date,
		Escaped: outcomeFromIndex(outcomeIndex),
		Rating:  rating,
	}

	if err := draft.Validate(); err != nil {
		return feed.Draft{}, err
	}

	return draft, nil
}

// createItem posts the draft and, on success, inserts the created record
// into the accumulated list without a session reset.
func (v *browserView) createItem(draft feed.Draft) {
	go func() {
		created, err := v.app.config.Client.Create(v.app.ctx, v.collection, draft.Item())

		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.app.flashError(fmt.Sprintf("create failed: %v", err))

				return
			}

			v.loader.Insert(created)
			v.refresh()
		})
	}()
}

func parseDateInput(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateInputFormat, text)
}

func formatDateInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateInputFormat)
}

// centered wraps a primitive in a fixed-size centered frame.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
