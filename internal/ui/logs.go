package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pellmont/folio/internal/logtail"
)

// renderLogs renders the logs view: the tail of folio's own log file.
func (m Model) renderLogs() string {
	contentHeight := m.height - 2 // Account for header + cmdbar

	if m.logPath == "" {
		styles := m.theme.Styles()
		msg := styles.MutedText.Render("Logging is disabled (no log_file configured)")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	title := fmt.Sprintf("Logs  %s", truncateMiddle(m.logPath, 48))
	return m.renderTitledBox(title, m.logViewport.View(), m.width, contentHeight, true)
}

// updateLogViewport resizes the log viewport and rebuilds its content
// from the raw tail lines.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}

	m.logViewport.Width = max(m.width-2, 0)
	m.logViewport.Height = max(m.height-4, 0)

	if len(m.logLines) == 0 {
		m.logViewport.SetContent(m.theme.Styles().FaintText.Render("log file is empty"))
		return
	}

	styles := m.theme.Styles()
	rendered := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		rendered = append(rendered, formatLogLine(styles, line))
	}
	m.logViewport.SetContent(strings.Join(rendered, "\n"))
	m.logViewport.GotoBottom()
}

// logRecord is the subset of a structured log line the view displays
// as a header; everything else becomes trailing key=value pairs.
type logRecord struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Component string `json:"component"`
	Message   string `json:"message"`
}

// formatLogLine renders one structured log line for display. Lines
// that are not JSON are shown verbatim.
func formatLogLine(styles Styles, line string) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return styles.Text.Render(line)
	}

	var rec logRecord
	if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
		return styles.Text.Render(line)
	}

	var parts []string
	if ts := formatLogTime(rec.Time); ts != "" {
		parts = append(parts, styles.FaintText.Render(ts))
	}
	level := strings.ToUpper(strings.TrimSpace(rec.Level))
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, logLevelStyle(styles, level).Render(level))
	if component := strings.TrimSpace(rec.Component); component != "" {
		parts = append(parts, styles.AccentText.Render("["+component+"]"))
	}
	if message := strings.TrimSpace(rec.Message); message != "" {
		parts = append(parts, styles.Text.Render(message))
	}
	if extras := logExtras(trimmed); extras != "" {
		parts = append(parts, styles.MutedText.Render(extras))
	}
	return strings.Join(parts, " ")
}

// formatLogTime converts an RFC3339 timestamp to a short local time.
func formatLogTime(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.In(time.Local).Format("15:04:05")
}

// logLevelStyle picks the style for a log level label.
func logLevelStyle(styles Styles, level string) lipgloss.Style {
	switch level {
	case "ERROR", "FATAL", "PANIC":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG", "TRACE":
		return styles.InfoText
	default:
		return styles.SuccessText
	}
}

// logExtras renders the structured fields beyond the standard header
// as sorted key=value pairs.
func logExtras(line string) string {
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return ""
	}
	for _, known := range []string{"level", "time", "component", "message"} {
		delete(fields, known)
	}
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, formatFieldValue(fields[k])))
	}
	return strings.Join(pairs, " ")
}

// Messages

type logLinesMsg []string

// Commands

// readLogsCmd reads the log tail off the Update loop.
func readLogsCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLimit)
		if err != nil {
			return logLinesMsg{fmt.Sprintf("failed to read log file: %v", err)}
		}
		return logLinesMsg(lines)
	}
}
