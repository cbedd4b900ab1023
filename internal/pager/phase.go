package pager

// Phase describes where a listing stands in its load cycle.
type Phase int

const (
	// PhaseIdle is the starting state: nothing loaded, nothing requested.
	PhaseIdle Phase = iota

	// PhaseInitialLoading is the first page request, with no items visible.
	PhaseInitialLoading

	// PhaseIncrementalLoading is a follow-up page request appending to
	// items already on screen.
	PhaseIncrementalLoading

	// PhaseReady means items are visible and the next page can be requested.
	PhaseReady

	// PhaseExhausted means the listing is complete. Terminal.
	PhaseExhausted

	// PhaseFailed means the most recent fetch failed.
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitialLoading:
		return "initial-loading"
	case PhaseIncrementalLoading:
		return "incremental-loading"
	case PhaseReady:
		return "ready"
	case PhaseExhausted:
		return "exhausted"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loading reports whether a fetch is in flight.
func (p Phase) Loading() bool {
	return p == PhaseInitialLoading || p == PhaseIncrementalLoading
}
