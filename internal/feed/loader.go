package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/roomlog/roomlog/internal/api"
	"github.com/roomlog/roomlog/internal/logger"
)

// State is the loading state of one browsing session.
type State int

const (
	// StateIdle means the next page may be requested.
	StateIdle State = iota
	// StateLoading means a page request is in flight; further requests are
	// refused until it settles.
	StateLoading
	// StateExhausted means no further pages will be requested until the
	// next reset.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// DefaultPageSize is the number of items requested per page.
const DefaultPageSize = 12

// FetchFunc fetches one page of results for a query.
type FetchFunc func(ctx context.Context, page, size int, q Query) (api.Page, error)

// Loader accumulates pages of results for one collection, one page at a
// time. A browsing session starts at Reset (or SetQuery) and ends at the
// next one; at most one fetch is in flight per session, and responses from
// an earlier session are discarded.
type Loader struct {
	fetch FetchFunc
	size  int

	mu      sync.Mutex
	query   Query
	session string
	cursor  int
	state   State
	items   []api.Item
	seen    map[int64]struct{}
	total   int64
	lastErr error
}

// NewLoader creates a loader with an empty query. size falls back to
// DefaultPageSize when non-positive.
func NewLoader(fetch FetchFunc, size int) *Loader {
	if size <= 0 {
		size = DefaultPageSize
	}

	l := &Loader{fetch: fetch, size: size}
	l.resetLocked()

	return l
}

// Reset starts a new session: cursor back to zero, accumulated items
// cleared, state Idle. The query is kept.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resetLocked()
}

// resetLocked must be called with l.mu held (or before the loader escapes
// the constructor).
func (l *Loader) resetLocked() {
	l.session = uuid.NewString()
	l.cursor = 0
	l.state = StateIdle
	l.items = nil
	l.seen = make(map[int64]struct{})
	l.total = -1
	l.lastErr = nil
}

// SetQuery replaces the filter and starts a new session. A query equal to
// the current one still resets, matching an explicit re-apply by the user.
func (l *Loader) SetQuery(q Query) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = q
	l.resetLocked()
}

// ClearFilter removes one filter dimension and starts a new session.
func (l *Loader) ClearFilter(field Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = l.query.Clear(field)
	l.resetLocked()
}

// LoadNextPage fetches the next page unless a fetch is already in flight or
// the session is exhausted; those calls are silent no-ops, so redundant
// triggers (scroll sentinel, key repeat) cannot cause duplicate requests.
//
// An empty page, a reported last page, or any fetch error ends the session
// (Exhausted). Items accumulated before a failure stay visible.
func (l *Loader) LoadNextPage(ctx context.Context) error {
	l.mu.Lock()

	if l.state != StateIdle {
		l.mu.Unlock()

		return nil
	}

	l.state = StateLoading
	session := l.session
	page := l.cursor
	q := l.query
	l.mu.Unlock()

	result, err := l.fetch(ctx, page, l.size, q)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session != session {
		// The session was reset while the request was in flight; the
		// response belongs to a query the user no longer cares about.
		logger.Log.Debugf("Discarding stale page %d response from previous session", page)

		return nil
	}

	if err != nil {
		logger.Log.Debugf("Page %d fetch failed, ending session: %v", page, err)
		l.state = StateExhausted
		l.lastErr = err

		return err
	}

	if len(result.Items) == 0 {
		l.state = StateExhausted

		return nil
	}

	appended := 0

	for _, item := range result.Items {
		if _, dup := l.seen[item.ID]; dup {
			continue
		}

		l.seen[item.ID] = struct{}{}
		l.items = append(l.items, item)
		appended++
	}

	l.cursor++

	if result.Last {
		l.state = StateExhausted
	} else {
		l.state = StateIdle
	}

	if result.Total >= 0 {
		l.total = result.Total
	}

	logger.Log.Debugf("Page %d loaded: %d items (%d new), state=%s", page, len(result.Items), appended, l.state)

	return nil
}

// LoadAll keeps fetching pages until the session is exhausted or limit
// items have accumulated (limit <= 0 means no limit). It returns whatever
// accumulated, even on a failed fetch.
func (l *Loader) LoadAll(ctx context.Context, limit int) ([]api.Item, error) {
	for l.State() == StateIdle {
		if limit > 0 && l.Len() >= limit {
			break
		}

		if err := l.LoadNextPage(ctx); err != nil {
			return l.Items(), err
		}
	}

	items := l.Items()
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// Items returns a copy of the accumulated items in first-appearance order.
func (l *Loader) Items() []api.Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]api.Item, len(l.items))
	copy(out, l.items)

	return out
}

// Len returns the number of accumulated items.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.items)
}

// State returns the current session state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Query returns the session's filter snapshot.
func (l *Loader) Query() Query {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.query
}

// Err returns the error that ended the current session, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lastErr
}

// Total returns the backend-reported total element count, or -1 when the
// backend never reported one.
func (l *Loader) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.total
}

// Remove drops one item by id after a confirmed server-side delete. Order
// of the remaining items is unchanged. Removing an unknown id is a no-op.
func (l *Loader) Remove(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[id]; !ok {
		return false
	}

	delete(l.seen, id)

	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)

			break
		}
	}

	if l.total > 0 {
		l.total--
	}

	return true
}

// Insert prepends a freshly created item without resetting the session.
// Duplicate ids are refused.
func (l *Loader) Insert(item api.Item) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, dup := l.seen[item.ID]; dup {
		return false
	}

	l.seen[item.ID] = struct{}{}
	l.items = append([]api.Item{item}, l.items...)

	if l.total >= 0 {
		l.total++
	}

	return true
}
