package tui

import (
	"fmt"

	"github.com/rivo/tview"
)

const confirmPageName = "confirm"

// confirmDelete asks before deleting the record under the cursor.
func (v *browserView) confirmDelete() {
	item, ok := v.selectedItem()
	if !ok {
		return
	}

	modal := tview.NewModal().
		SetText(fmt.Sprintf("Delete %q (#%d)?", item.Title, item.ID)).
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(_ int, label string) {
			v.app.pages.RemovePage(confirmPageName)
			v.app.SetFocus(v.table)

			if label == "Delete" {
				v.deleteItem(item.ID)
			}
		})

	v.app.pages.AddPage(confirmPageName, modal, true, true)
}

// deleteItem removes the record server-side first; the local list is only
// touched once the server confirms.
func (v *browserView) deleteItem(id int64) {
	go func() {
		err := v.app.config.Client.Delete(v.app.ctx, v.collection, id)

		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.app.flashError(fmt.Sprintf("delete failed: %v", err))

				return
			}

			v.loader.Remove(id)
			v.refresh()
		})
	}()
}
