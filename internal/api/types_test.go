package api

import (
	"strings"
	"testing"
)

func TestDecodePage_ParsesEntitiesAndNext(t *testing.T) {
	t.Parallel()

	body := `{
		"results": [
			{"id": 1, "name": "Rick Sanchez", "species": "Human"},
			{"id": 2, "name": "Morty Smith"}
		],
		"info": {"next": "page=2"}
	}`

	page, err := decodePage(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decodePage returned error: %v", err)
	}
	if len(page.Entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(page.Entities))
	}
	if page.Entities[0].ID != 1 || page.Entities[1].ID != 2 {
		t.Fatalf("entity ids = [%d %d], want [1 2]", page.Entities[0].ID, page.Entities[1].ID)
	}
	if got := page.Entities[0].Fields["species"]; got != "Human" {
		t.Fatalf("species field = %v, want Human", got)
	}
	if !page.HasMore || page.Next != "page=2" {
		t.Fatalf("hasMore=%v next=%q, want true page=2", page.HasMore, page.Next)
	}
}

func TestDecodePage_NullNextEndsListing(t *testing.T) {
	t.Parallel()

	body := `{"results": [{"id": 3}], "info": {"next": null}}`
	page, err := decodePage(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decodePage returned error: %v", err)
	}
	if page.HasMore || page.Next != "" {
		t.Fatalf("hasMore=%v next=%q, want false and empty", page.HasMore, page.Next)
	}
}

func TestDecodePage_EmptyResultsWithNextPromisesMore(t *testing.T) {
	t.Parallel()

	body := `{"results": [], "info": {"next": "page=9"}}`
	page, err := decodePage(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decodePage returned error: %v", err)
	}
	if len(page.Entities) != 0 {
		t.Fatalf("entities = %d, want 0", len(page.Entities))
	}
	if !page.HasMore {
		t.Fatalf("hasMore = false, want true when next is non-null")
	}
}

func TestDecodePage_RejectsMalformedEnvelopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not_json", `<html>offline</html>`},
		{"missing_results", `{"info": {"next": null}}`},
		{"missing_info", `{"results": [{"id": 1}]}`},
		{"null_results", `{"results": null, "info": {"next": null}}`},
		{"entity_without_id", `{"results": [{"name": "x"}], "info": {"next": null}}`},
		{"fractional_id", `{"results": [{"id": 1.5}], "info": {"next": null}}`},
		{"string_id", `{"results": [{"id": "1"}], "info": {"next": null}}`},
		{"entity_not_object", `{"results": [42], "info": {"next": null}}`},
		{"empty_next", `{"results": [{"id": 1}], "info": {"next": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := decodePage(strings.NewReader(tt.body)); err == nil {
				t.Fatalf("decodePage accepted %s, want error", tt.name)
			}
		})
	}
}

func TestEntityDisplayTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity Entity
		want   string
	}{
		{"name_field", Entity{ID: 1, Fields: map[string]any{"name": "Rick Sanchez"}}, "Rick Sanchez"},
		{"title_field", Entity{ID: 2, Fields: map[string]any{"title": "Pilot"}}, "Pilot"},
		{"name_wins_over_title", Entity{ID: 3, Fields: map[string]any{"name": "A", "title": "B"}}, "A"},
		{"blank_name_falls_through", Entity{ID: 4, Fields: map[string]any{"name": "  ", "title": "C"}}, "C"},
		{"no_label_fields", Entity{ID: 5, Fields: map[string]any{"species": "Human"}}, "Entity #5"},
		{"non_string_name", Entity{ID: 6, Fields: map[string]any{"name": 7}}, "Entity #6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.entity.DisplayTitle(); got != tt.want {
				t.Fatalf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
