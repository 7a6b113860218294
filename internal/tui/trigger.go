package tui

// fetchThreshold is how many rows from the bottom of the table count as
// the load-more sentinel being visible.
const fetchThreshold = 3

// scrollTrigger turns table selection changes into edge-triggered fetch
// signals: it fires once when the selection enters the sentinel zone and
// not again until the selection has left it. Repeated signals while a
// fetch is pending are additionally absorbed by the loader's state guard.
type scrollTrigger struct {
	near bool
}

// Visible reports the false-to-true transition of sentinel visibility for
// the given selection. selected is a data row index (0-based), total the
// number of data rows.
func (t *scrollTrigger) Visible(selected, total int) bool {
	near := total > 0 && selected >= total-fetchThreshold

	fired := near && !t.near
	t.near = near

	return fired
}

// Reset clears the edge state, used when the table is rebuilt.
func (t *scrollTrigger) Reset() {
	t.near = false
}
