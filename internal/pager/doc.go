// Package pager implements the load state machine for a paginated listing.
//
// # Overview
//
// The Controller is the single owner of everything the list screen renders:
// the accumulated entities, the cursor for the next page, the current phase,
// and the last error. The UI asks it to load, reads snapshots, and never
// talks to the network itself.
//
// # Phases
//
//	             LoadInitial
//	  Idle ───────────────────→ InitialLoading ──success──→ Ready / Exhausted
//	                                  │
//	                                failure
//	                                  ↓
//	  Failed ←──failure── IncrementalLoading ←──LoadMore── Ready
//	    │                                                    ↑
//	    └── Retry / LoadInitial ─────────────────────────────┘
//
// Ready means more pages exist; Exhausted means the listing is complete and
// is terminal - every operation no-ops there. Failed keeps whatever was
// accumulated: after an initial failure that is nothing, after an
// incremental failure it is the full list so far.
//
// # Single Flight
//
// At most one fetch is in flight. Each dispatch method checks the phase
// under the lock and returns nil anywhere outside its precondition, so a
// LoadMore while a load is already running is a silent no-op, never a queued
// request. On top of the phase guard every dispatch bumps a generation
// counter; a settlement whose generation is no longer current is dropped.
// That also makes re-running an already-settled Fetch harmless.
//
// # Dispatch Model
//
// The dispatch methods decide synchronously and return a *Fetch (or nil for
// a no-op). The caller runs it wherever it likes - the TUI wraps it into a
// command - and Run folds the outcome back in:
//
//	if f := controller.LoadMore(); f != nil {
//		go f.Run(ctx)
//	}
//
// # Ordering
//
// Entities append in page-arrival order and are never reordered,
// deduplicated, or dropped; only LoadInitial resets the list. If the API
// hands back the same id twice, it appears twice.
package pager
