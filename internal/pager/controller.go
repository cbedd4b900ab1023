package pager

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pellmont/folio/internal/api"
)

// Fetcher loads one page of a listing. An empty token requests the first
// page; later tokens are whatever the previous page announced.
type Fetcher interface {
	FetchPage(ctx context.Context, token string) (api.Page, error)
}

// Ensure the API client satisfies Fetcher at compile time.
var _ Fetcher = (*api.Client)(nil)

// Controller owns the accumulated items, the next-page cursor, and the load
// phase for one listing. Dispatch methods decide synchronously under the
// lock whether a fetch may start; the returned Fetch settles from whatever
// goroutine runs it. All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	fetcher Fetcher
	logger  zerolog.Logger

	items  []api.Entity
	cursor string // token for the next page; empty means the first page
	phase  Phase
	err    error
	gen    uint64 // bumped per dispatch; stale settlements are dropped
}

// New builds an idle Controller on top of the given fetcher.
func New(f Fetcher, logger zerolog.Logger) *Controller {
	return &Controller{fetcher: f, logger: logger}
}

// Snapshot is an immutable view of the list state.
type Snapshot struct {
	Items []api.Entity
	Phase Phase
	Err   error // non-nil exactly when Phase is PhaseFailed
}

// Fetch is one dispatched page load. Run performs the request and folds the
// outcome back into the controller, unless a newer dispatch superseded it.
type Fetch struct {
	c     *Controller
	gen   uint64
	token string
}

// Run executes the fetch. Running a Fetch twice settles nothing the second
// time: its generation has already been consumed.
func (f *Fetch) Run(ctx context.Context) {
	page, err := f.c.fetcher.FetchPage(ctx, f.token)
	f.c.settle(f.gen, page, err)
}

// LoadInitial starts loading the first page. Valid while idle or failed;
// anywhere else it is a silent no-op returning nil. Accumulated items and
// the cursor reset immediately, so a failure of this load leaves an empty
// list.
func (c *Controller) LoadInitial() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseIdle && c.phase != PhaseFailed {
		return nil
	}
	c.items = nil
	c.cursor = ""
	c.err = nil
	c.phase = PhaseInitialLoading
	return c.dispatch()
}

// LoadMore starts loading the next page. Valid only while ready; anywhere
// else, including while another fetch is in flight, it is a silent no-op
// returning nil. Requests are never queued.
func (c *Controller) LoadMore() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady {
		return nil
	}
	c.phase = PhaseIncrementalLoading
	return c.dispatch()
}

// Retry re-dispatches after a failure: with no items accumulated it acts as
// the initial load, otherwise it retries the next page at the retained
// cursor. Valid only while failed. One attempt, no backoff.
func (c *Controller) Retry() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseFailed {
		return nil
	}
	c.err = nil
	if len(c.items) == 0 {
		c.cursor = ""
		c.phase = PhaseInitialLoading
	} else {
		c.phase = PhaseIncrementalLoading
	}
	return c.dispatch()
}

// Snapshot returns a copy of the current state. The items slice is cloned so
// callers can hold it across later settlements.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Items: cloneItems(c.items),
		Phase: c.phase,
		Err:   c.err,
	}
}

// dispatch tags a new fetch for the current cursor. Callers hold the lock.
func (c *Controller) dispatch() *Fetch {
	c.gen++
	c.logger.Debug().
		Uint64("gen", c.gen).
		Str("token", c.cursor).
		Str("phase", c.phase.String()).
		Msg("fetch dispatched")
	return &Fetch{c: c, gen: c.gen, token: c.cursor}
}

// settle folds a fetch outcome into the controller. Results from a stale
// generation, or arriving when no fetch is supposed to be in flight, are
// dropped.
func (c *Controller) settle(gen uint64, page api.Page, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || !c.phase.Loading() {
		c.logger.Debug().
			Uint64("gen", gen).
			Uint64("current", c.gen).
			Msg("stale settlement dropped")
		return
	}

	if err != nil {
		// Items and cursor stay untouched: an initial failure leaves the
		// list empty, an incremental one keeps everything accumulated.
		c.err = err
		c.phase = PhaseFailed
		c.logger.Warn().
			Uint64("gen", gen).
			Int("items", len(c.items)).
			Err(err).
			Msg("fetch failed")
		return
	}

	c.items = append(c.items, page.Entities...)
	c.cursor = page.Next
	c.err = nil
	if page.HasMore {
		c.phase = PhaseReady
	} else {
		c.phase = PhaseExhausted
	}
	c.logger.Debug().
		Uint64("gen", gen).
		Int("appended", len(page.Entities)).
		Int("items", len(c.items)).
		Bool("has_more", page.HasMore).
		Msg("page settled")
}

func cloneItems(items []api.Entity) []api.Entity {
	if len(items) == 0 {
		return nil
	}
	dup := make([]api.Entity, len(items))
	copy(dup, items)
	return dup
}
