package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pellmont/folio/internal/api"
	"github.com/pellmont/folio/internal/pager"
)

// renderHeader renders the status bar with phase, counts, and endpoint.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	snap := m.snapshot
	var parts []string

	// Logo
	parts = append(parts, bg.Render("folio", styles.Logo))

	// Phase badge
	phase := snap.Phase.String()
	parts = append(parts, styles.PhaseStyle(phase).Render(titleCase(phase)))

	// Loaded count
	parts = append(parts,
		bg.Render("Items:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(snap.Items)), styles.Text))

	// Endpoint
	if !compact && m.endpoint != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.endpoint, 48), styles.FaintText))
	}

	// Timestamp with relative time
	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	// Error indicator
	if snap.Phase == pager.PhaseFailed && snap.Err != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		parts = append(parts,
			bg.Render(errorHeadline(snap.Err), styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(fmt.Sprintf("%v", snap.Err), maxErr), styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last settlement time with a relative
// indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"r", "Refresh"},
			{"j/k", "Scroll"},
			{"esc", "Back"},
			{"?", "More"},
		}
	case ViewDetail:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"esc", "Back"},
			{"l", "Logs"},
			{"?", "More"},
		}
	default: // ViewList
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Detail"},
			{"/", "Filter"},
			{"l", "Logs"},
			{"tab", "Focus"},
		}
		if m.snapshot.Phase == pager.PhaseFailed {
			commands = append(commands, cmd{"r", "Retry"})
		}
		commands = append(commands, cmd{"?", "More"})
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show the active filter pattern
	if m.currentView == ViewList && m.filterQuery() != "" {
		segments = append(segments,
			bg.Render("/"+truncate(m.filterQuery(), 18), styles.AccentText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// errorHeadline maps a fetch error to a short headline for display.
func errorHeadline(err error) string {
	if err == nil {
		return ""
	}
	apiErr, ok := api.AsError(err)
	if !ok {
		return "ERROR"
	}
	switch apiErr.Kind {
	case api.KindNetwork:
		return "NETWORK ERROR"
	case api.KindHTTP:
		return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
	case api.KindDecode:
		return "BAD RESPONSE"
	default:
		return "ERROR"
	}
}
