package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellmont/folio/internal/api"
	"github.com/pellmont/folio/internal/pager"
)

// filterEntities narrows items to those whose title or ID contains the
// query, case-insensitively. An empty query returns items unchanged.
func filterEntities(items []api.Entity, query string) []api.Entity {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}
	matched := make([]api.Entity, 0, len(items))
	for _, e := range items {
		title := strings.ToLower(e.DisplayTitle())
		id := fmt.Sprintf("#%d", e.ID)
		if strings.Contains(title, query) || strings.Contains(id, query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// visibleEntities returns the loaded entities with the filter applied.
func (m Model) visibleEntities() []api.Entity {
	return filterEntities(m.snapshot.Items, m.filterQuery())
}

// filterQuery returns the active filter text.
func (m Model) filterQuery() string {
	return strings.TrimSpace(m.filterInput.Value())
}

// clampSelection keeps the selection inside the visible row range.
func (m *Model) clampSelection() {
	count := len(m.visibleEntities())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// selectedEntity returns the entity under the cursor, or nil.
func (m Model) selectedEntity() *api.Entity {
	entities := m.visibleEntities()
	if m.selectedRow < 0 || m.selectedRow >= len(entities) {
		return nil
	}
	return &entities[m.selectedRow]
}

// nearEnd reports whether the selection is within LoadMoreThreshold
// rows of the end of the loaded list.
func nearEnd(selected, total int) bool {
	return total-selected <= LoadMoreThreshold
}

// listWindowStart returns the first visible row index so the selection
// stays inside a window of the given height.
func listWindowStart(selected, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	start := selected - height + 1
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start
}

// renderList renders the list view with split layout (list + detail pane).
func (m Model) renderList() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // Account for header + cmdbar

	snap := m.snapshot
	if len(snap.Items) == 0 {
		switch snap.Phase {
		case pager.PhaseFailed:
			return m.renderFailedState(contentHeight)
		case pager.PhaseExhausted:
			empty := styles.MutedText.Render("No entities")
			return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
		case pager.PhaseIdle:
			empty := styles.MutedText.Render("Nothing loaded yet")
			return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
		default:
			loading := m.spinner.View() + " " + styles.MutedText.Render("Loading entities...")
			return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, loading)
		}
	}

	// Calculate pane dimensions (responsive)
	// Extra wide (>= 160): 30% list, 70% detail
	// Default: 40% list, 60% detail
	var listWidth int
	if m.width >= LayoutExtraWideWidth {
		listWidth = m.width * 30 / 100
	} else {
		listWidth = m.width * 40 / 100
	}
	detailWidth := m.width - listWidth

	// === List Pane ===
	listFocused := m.focusedPane == 0
	listBg := m.theme.SurfaceAlt
	if listFocused {
		listBg = m.theme.FocusBg
	}
	innerWidth := listWidth - 2 // -2 for borders
	rows := m.renderListRows(innerWidth, contentHeight-3, listBg)
	footer := m.footerLine(innerWidth, listBg)
	if m.filterInput.Focused() {
		footer = NewBgStyle(listBg).FillLine(m.filterInput.View(), innerWidth)
	}
	listContent := strings.Join(append(rows, footer), "\n")
	listPane := m.renderTitledBox(m.listTitle(), listContent, listWidth, contentHeight, listFocused)

	// === Detail Pane ===
	detailFocused := m.focusedPane == 1
	detailBg := m.theme.SurfaceAlt
	if detailFocused {
		detailBg = m.theme.FocusBg
	}
	var detailContent string
	if m.selectedEntity() != nil {
		detailContent = m.detailViewport.View()
	} else {
		detailContent = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(detailBg)).
			Render("Select an entity")
	}
	detailPane := m.renderTitledBox(m.detailTitle(), detailContent, detailWidth, contentHeight, detailFocused)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// renderFailedState renders the centered error state shown when a
// failure left the list empty.
func (m Model) renderFailedState(height int) string {
	styles := m.theme.Styles()

	headline := styles.DangerText.Render(errorHeadline(m.snapshot.Err))
	detail := styles.MutedText.Render(truncate(fmt.Sprintf("%v", m.snapshot.Err), 80))
	hint := styles.FaintText.Render("press r to retry")

	block := lipgloss.JoinVertical(lipgloss.Center, headline, "", detail, hint)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, block)
}

// renderListRows renders the visible window of entity rows, padded to
// exactly height lines.
func (m Model) renderListRows(width, height int, bgColor string) []string {
	entities := m.visibleEntities()

	lines := make([]string, 0, max(height, 0))
	if height > 0 && len(entities) > 0 {
		start := listWindowStart(m.selectedRow, len(entities), height)
		end := min(start+height, len(entities))
		for i := start; i < end; i++ {
			if i == m.selectedRow {
				content := m.formatEntityRow(entities[i], width, m.theme.SelectionBg, true)
				lines = append(lines, lipgloss.NewStyle().
					Background(lipgloss.Color(m.theme.SelectionBg)).
					Width(width).
					Render(content))
			} else {
				content := m.formatEntityRow(entities[i], width, bgColor, false)
				lines = append(lines, lipgloss.NewStyle().
					Background(lipgloss.Color(bgColor)).
					Width(width).
					Render(content))
			}
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// formatEntityRow formats a single list row: "#ID Title".
// When selected is true, uses SelectionText color for contrast.
func (m Model) formatEntityRow(e api.Entity, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	idStr := fmt.Sprintf("#%d", e.ID)
	titleWidth := max(width-len(idStr)-2, 10)

	var idStyle, titleStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle = selText.Bold(true)
		titleStyle = selText
	} else {
		styles := m.theme.Styles()
		idStyle = styles.MutedText
		titleStyle = styles.Text
	}

	idPart := bg.Render(idStr, idStyle)
	titlePart := bg.Render(truncate(e.DisplayTitle(), titleWidth), titleStyle)
	return idPart + bg.Space() + titlePart
}

// footerLine renders the inline status row at the bottom of the list pane.
func (m Model) footerLine(width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)

	var content string
	switch m.snapshot.Phase {
	case pager.PhaseIncrementalLoading:
		content = bg.Render("loading more...", styles.InfoText)
	case pager.PhaseExhausted:
		content = bg.Render("end of list", styles.FaintText)
	case pager.PhaseFailed:
		content = bg.Render("!", styles.DangerText) + bg.Space() +
			bg.Render(errorHeadline(m.snapshot.Err), styles.DangerText) + bg.Space() +
			bg.Render("r to retry", styles.WarningText)
	default:
		content = bg.Render(m.positionLabel(), styles.FaintText)
	}
	return bg.FillLine(content, width)
}

// positionLabel describes the cursor position, or the filter match count.
func (m Model) positionLabel() string {
	visible := len(m.visibleEntities())
	total := len(m.snapshot.Items)
	if query := m.filterQuery(); query != "" {
		return fmt.Sprintf("%d of %d match /%s", visible, total, truncate(query, 18))
	}
	if visible == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.selectedRow+1, total)
}

// listTitle returns the list pane title with loaded counts.
func (m Model) listTitle() string {
	total := len(m.snapshot.Items)
	if m.filterQuery() == "" {
		return fmt.Sprintf("Entities (%d)", total)
	}
	return fmt.Sprintf("Entities (%d/%d)", len(m.visibleEntities()), total)
}

// detailTitle returns the detail pane title for the selected entity.
func (m Model) detailTitle() string {
	if e := m.selectedEntity(); e != nil {
		return fmt.Sprintf("Entity #%d", e.ID)
	}
	return "Detail"
}

// renderTitledBox renders content in a box with the title embedded in
// the top border: ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := width - 2 // Account for left and right border chars
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	// Pad or truncate content lines to fill the box
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
