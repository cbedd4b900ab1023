package ui

import (
	"strings"
	"testing"

	"github.com/pellmont/folio/internal/api"
	"github.com/pellmont/folio/internal/pager"
)

func TestFormatFieldValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"string", "Rick Sanchez", "Rick Sanchez"},
		{"empty_string", "", `""`},
		{"bool", true, "true"},
		{"integral_number", float64(42), "42"},
		{"negative_integral", float64(-7), "-7"},
		{"fractional_number", 3.5, "3.5"},
		{"nested_object", map[string]any{"name": "Earth", "url": "u"}, `{"name":"Earth","url":"u"}`},
		{"nested_array", []any{float64(1), float64(2)}, `[1,2]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := formatFieldValue(tc.in)
			if got != tc.want {
				t.Fatalf("formatFieldValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildDetailContentSortsFields(t *testing.T) {
	m := listModel(nil, pager.PhaseReady)

	e := api.Entity{ID: 5, Fields: map[string]any{
		"status":  "Alive",
		"id":      float64(5),
		"name":    "Rick Sanchez",
		"origin":  map[string]any{"name": "Earth"},
		"species": "Human",
	}}

	content := m.buildDetailContent(e, 60)

	for _, want := range []string{"Rick Sanchez", "status", "species", `{"name":"Earth"}`} {
		if !strings.Contains(content, want) {
			t.Fatalf("detail content missing %q:\n%s", want, content)
		}
	}

	// Fields appear in sorted order
	idIdx := strings.Index(content, "id")
	nameIdx := strings.Index(content, "name")
	statusIdx := strings.Index(content, "status")
	if !(idIdx < nameIdx && nameIdx < statusIdx) {
		t.Fatalf("fields out of order: id=%d name=%d status=%d", idIdx, nameIdx, statusIdx)
	}
}
