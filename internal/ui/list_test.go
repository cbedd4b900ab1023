package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pellmont/folio/internal/api"
	"github.com/pellmont/folio/internal/pager"
)

func listEntity(id int64, title string) api.Entity {
	return api.Entity{ID: id, Fields: map[string]any{"id": float64(id), "name": title}}
}

func listModel(items []api.Entity, phase pager.Phase) Model {
	m := New(Options{})
	m.snapshot = pager.Snapshot{Items: items, Phase: phase}
	m.width = 120
	m.height = 40
	m.ready = true
	return m
}

func TestFilterEntities(t *testing.T) {
	items := []api.Entity{
		listEntity(1, "Rick Sanchez"),
		listEntity(2, "Morty Smith"),
		listEntity(3, "Summer Smith"),
	}

	cases := []struct {
		name  string
		query string
		want  []int64
	}{
		{"empty_query", "", []int64{1, 2, 3}},
		{"title_match", "smith", []int64{2, 3}},
		{"case_insensitive", "RICK", []int64{1}},
		{"id_match", "#2", []int64{2}},
		{"no_match", "jerry", nil},
		{"whitespace_only", "   ", []int64{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filterEntities(items, tc.query)
			ids := make([]int64, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if len(ids) != len(tc.want) {
				t.Fatalf("filterEntities(%q) = %v, want %v", tc.query, ids, tc.want)
			}
			for i := range ids {
				if ids[i] != tc.want[i] {
					t.Fatalf("filterEntities(%q) = %v, want %v", tc.query, ids, tc.want)
				}
			}
		})
	}
}

func TestListWindowStart(t *testing.T) {
	cases := []struct {
		name     string
		selected int
		total    int
		height   int
		want     int
	}{
		{"all_fit", 3, 5, 10, 0},
		{"selection_on_first_page", 2, 50, 10, 0},
		{"selection_past_window", 15, 50, 10, 6},
		{"selection_at_end", 49, 50, 10, 40},
		{"zero_height", 3, 5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := listWindowStart(tc.selected, tc.total, tc.height)
			if got != tc.want {
				t.Fatalf("listWindowStart(%d, %d, %d) = %d, want %d",
					tc.selected, tc.total, tc.height, got, tc.want)
			}
			if tc.height > 0 && tc.total > tc.height {
				if tc.selected < got || tc.selected >= got+tc.height {
					t.Fatalf("selection %d outside window [%d, %d)", tc.selected, got, got+tc.height)
				}
			}
		})
	}
}

func TestNearEnd(t *testing.T) {
	cases := []struct {
		name     string
		selected int
		total    int
		want     bool
	}{
		{"far_from_end", 0, 40, false},
		{"just_outside", 34, 40, false},
		{"at_threshold", 35, 40, true},
		{"last_row", 39, 40, true},
		{"short_list", 0, 3, true},
		{"empty_list", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nearEnd(tc.selected, tc.total); got != tc.want {
				t.Fatalf("nearEnd(%d, %d) = %v, want %v", tc.selected, tc.total, got, tc.want)
			}
		})
	}
}

func TestClampSelection(t *testing.T) {
	m := listModel([]api.Entity{listEntity(1, "a"), listEntity(2, "b"), listEntity(3, "c")}, pager.PhaseReady)

	m.selectedRow = 10
	m.clampSelection()
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow = %d, want 2", m.selectedRow)
	}

	m.selectedRow = -4
	m.clampSelection()
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow = %d, want 0", m.selectedRow)
	}

	empty := listModel(nil, pager.PhaseReady)
	empty.selectedRow = 7
	empty.clampSelection()
	if empty.selectedRow != 0 {
		t.Fatalf("selectedRow on empty list = %d, want 0", empty.selectedRow)
	}
}

func TestSelectedEntityFollowsFilter(t *testing.T) {
	m := listModel([]api.Entity{
		listEntity(1, "Rick Sanchez"),
		listEntity(2, "Morty Smith"),
		listEntity(3, "Summer Smith"),
	}, pager.PhaseReady)

	m.filterInput.SetValue("smith")
	m.clampSelection()
	m.selectedRow = 1

	e := m.selectedEntity()
	if e == nil {
		t.Fatalf("selectedEntity returned nil")
	}
	if e.ID != 3 {
		t.Fatalf("selectedEntity.ID = %d, want 3", e.ID)
	}
}

type listStubFetcher struct {
	page api.Page
}

func (f listStubFetcher) FetchPage(ctx context.Context, token string) (api.Page, error) {
	return f.page, nil
}

// readyController builds a controller that has already settled one page
// and reports PhaseReady.
func readyController(t *testing.T, items int) *pager.Controller {
	t.Helper()

	page := api.Page{Next: "page=2", HasMore: true}
	for i := 1; i <= items; i++ {
		page.Entities = append(page.Entities, listEntity(int64(i), "entity"))
	}

	c := pager.New(listStubFetcher{page: page}, zerolog.Nop())
	f := c.LoadInitial()
	if f == nil {
		t.Fatalf("LoadInitial returned nil fetch")
	}
	f.Run(context.Background())

	if snap := c.Snapshot(); snap.Phase != pager.PhaseReady {
		t.Fatalf("setup phase = %v, want %v", snap.Phase, pager.PhaseReady)
	}
	return c
}

func TestMaybeLoadMoreDispatchesNearEnd(t *testing.T) {
	c := readyController(t, 10)

	m := New(Options{Controller: c})
	m.refreshSnapshot()
	m.selectedRow = 7 // within LoadMoreThreshold of row 10

	cmd := m.maybeLoadMore()
	if cmd == nil {
		t.Fatalf("expected a dispatch near the end of the list")
	}
	if snap := c.Snapshot(); snap.Phase != pager.PhaseIncrementalLoading {
		t.Fatalf("phase after dispatch = %v, want %v", snap.Phase, pager.PhaseIncrementalLoading)
	}
}

func TestMaybeLoadMoreSkipsWhenFarFromEnd(t *testing.T) {
	c := readyController(t, 40)

	m := New(Options{Controller: c})
	m.refreshSnapshot()
	m.selectedRow = 0

	if cmd := m.maybeLoadMore(); cmd != nil {
		t.Fatalf("expected no dispatch far from the end")
	}
	if snap := c.Snapshot(); snap.Phase != pager.PhaseReady {
		t.Fatalf("phase = %v, want %v", snap.Phase, pager.PhaseReady)
	}
}

func TestMaybeLoadMoreSkipsWhileFiltering(t *testing.T) {
	c := readyController(t, 10)

	m := New(Options{Controller: c})
	m.refreshSnapshot()
	m.selectedRow = 9
	m.filterInput.SetValue("entity")

	if cmd := m.maybeLoadMore(); cmd != nil {
		t.Fatalf("expected no dispatch while a filter is active")
	}
	if snap := c.Snapshot(); snap.Phase != pager.PhaseReady {
		t.Fatalf("phase = %v, want %v", snap.Phase, pager.PhaseReady)
	}
}

func TestFooterLineReflectsPhase(t *testing.T) {
	cases := []struct {
		name  string
		phase pager.Phase
		want  string
	}{
		{"loading_more", pager.PhaseIncrementalLoading, "loading more"},
		{"exhausted", pager.PhaseExhausted, "end of list"},
		{"ready_position", pager.PhaseReady, "1/2"},
	}
	items := []api.Entity{listEntity(1, "a"), listEntity(2, "b")}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := listModel(items, tc.phase)
			got := m.footerLine(40, m.theme.SurfaceAlt)
			if !strings.Contains(got, tc.want) {
				t.Fatalf("footerLine for %v = %q, want it to contain %q", tc.phase, got, tc.want)
			}
		})
	}
}

func TestListTitleShowsFilterCounts(t *testing.T) {
	m := listModel([]api.Entity{
		listEntity(1, "Rick Sanchez"),
		listEntity(2, "Morty Smith"),
	}, pager.PhaseReady)

	if got := m.listTitle(); got != "Entities (2)" {
		t.Fatalf("listTitle = %q, want %q", got, "Entities (2)")
	}

	m.filterInput.SetValue("rick")
	if got := m.listTitle(); got != "Entities (1/2)" {
		t.Fatalf("filtered listTitle = %q, want %q", got, "Entities (1/2)")
	}
}
