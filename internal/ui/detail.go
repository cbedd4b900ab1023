package ui

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellmont/folio/internal/api"
)

// renderDetailView renders the full-screen detail view for the
// selected entity.
func (m Model) renderDetailView() string {
	contentHeight := m.height - 2 // Account for header + cmdbar

	e := m.selectedEntity()
	if e == nil {
		styles := m.theme.Styles()
		empty := styles.MutedText.Render("Select an entity")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	title := fmt.Sprintf("Entity #%d  %s", e.ID, truncate(e.DisplayTitle(), 40))
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, contentHeight, true)
}

// updateDetailViewport resizes the detail viewport for the current
// view and refreshes its content from the selected entity.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}

	contentHeight := m.height - 2
	var width int
	if m.currentView == ViewDetail {
		width = m.width - 2
	} else {
		// Split layout: viewport fills the detail pane.
		var listWidth int
		if m.width >= LayoutExtraWideWidth {
			listWidth = m.width * 30 / 100
		} else {
			listWidth = m.width * 40 / 100
		}
		width = m.width - listWidth - 2
	}

	m.detailViewport.Width = max(width, 0)
	m.detailViewport.Height = max(contentHeight-2, 0)

	e := m.selectedEntity()
	if e == nil {
		m.detailViewport.SetContent("")
		m.detailViewport.GotoTop()
		return
	}
	m.detailViewport.SetContent(m.buildDetailContent(*e, m.detailViewport.Width))
}

// buildDetailContent renders all fields of an entity, sorted by name.
// Scalar values print inline; nested values print as compact JSON.
func (m Model) buildDetailContent(e api.Entity, width int) string {
	styles := m.theme.Styles()

	names := make([]string, 0, len(e.Fields))
	labelWidth := 0
	for name := range e.Fields {
		names = append(names, name)
		if len(name) > labelWidth {
			labelWidth = len(name)
		}
	}
	sort.Strings(names)
	labelWidth = min(labelWidth+2, 24)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(e.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(max(width, 0), 40))))
	b.WriteString("\n\n")

	valueStyle := styles.Text
	if width > labelWidth {
		valueStyle = valueStyle.Width(width - labelWidth)
	}
	for _, name := range names {
		label := styles.MutedText.Render(padRight(name, labelWidth))
		value := valueStyle.Render(formatFieldValue(e.Fields[name]))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, value))
		b.WriteString("\n")
	}

	return b.String()
}

// formatFieldValue renders a decoded JSON value for display.
func formatFieldValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		if val == "" {
			return `""`
		}
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// JSON numbers decode as float64; show integers without the
		// fractional tail.
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}
