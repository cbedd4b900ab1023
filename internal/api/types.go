package api

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// Entity is one object from a listing. The envelope contract guarantees a
// unique integer id; every other field is opaque payload kept for display.
type Entity struct {
	ID     int64
	Fields map[string]any
}

// DisplayTitle returns a human-readable label for the entity, preferring
// conventional naming fields over the bare id.
func (e Entity) DisplayTitle() string {
	for _, key := range []string{"name", "title"} {
		if v, ok := e.Fields[key].(string); ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return fmt.Sprintf("Entity #%d", e.ID)
}

// Page is one decoded page of a listing.
type Page struct {
	Entities []Entity
	Next     string // token for the following page; empty when the listing is complete
	HasMore  bool
}

// pageEnvelope mirrors the wire shape: {"results": [...], "info": {"next": ...}}.
// Pointer fields distinguish absent keys from empty values.
type pageEnvelope struct {
	Results []json.RawMessage `json:"results"`
	Info    *pageInfo         `json:"info"`
}

type pageInfo struct {
	Next *string `json:"next"`
}

// decodePage parses the pagination envelope. Both results and info must be
// present; whether more pages exist derives from info.next alone, never from
// the length of results.
func decodePage(r io.Reader) (Page, error) {
	var env pageEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return Page{}, fmt.Errorf("decode response: %w", err)
	}
	if env.Results == nil {
		return Page{}, fmt.Errorf("response has no results field")
	}
	if env.Info == nil {
		return Page{}, fmt.Errorf("response has no info field")
	}

	entities := make([]Entity, 0, len(env.Results))
	for i, raw := range env.Results {
		entity, err := decodeEntity(raw)
		if err != nil {
			return Page{}, fmt.Errorf("results[%d]: %w", i, err)
		}
		entities = append(entities, entity)
	}

	page := Page{Entities: entities}
	if env.Info.Next != nil {
		next := strings.TrimSpace(*env.Info.Next)
		if next == "" {
			// An empty token would re-request the same page forever.
			return Page{}, fmt.Errorf("info.next is present but empty")
		}
		page.Next = next
		page.HasMore = true
	}
	return page, nil
}

func decodeEntity(raw json.RawMessage) (Entity, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Entity{}, fmt.Errorf("decode entity: %w", err)
	}
	id, ok := entityID(fields)
	if !ok {
		return Entity{}, fmt.Errorf("entity has no integer id")
	}
	return Entity{ID: id, Fields: fields}, nil
}

// entityID extracts the required integer id. JSON numbers decode as float64;
// only integral values qualify.
func entityID(fields map[string]any) (int64, bool) {
	v, ok := fields["id"]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
