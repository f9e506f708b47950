package ui

import (
	"fmt"
	"strings"

	"timeago/internal/distance"
	"timeago/internal/locale"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	sections := []string{m.renderHeader(), m.renderList()}
	if m.showDetail {
		if detail := m.renderDetail(); detail != "" {
			sections = append(sections, detail)
		}
	}
	sections = append(sections, m.renderFooter())
	frame := strings.Join(sections, "\n")

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, frame)
	if m.showHelp {
		canvas.centerOverlay(renderHelpOverlay(m.keys, m.outputFormat, m.width), 1, 1)
	} else if toast := m.renderCopyToast(); toast != "" {
		canvas.bottomRightOverlay(toast, 1)
	} else if toast := m.renderErrorToast(); toast != "" {
		canvas.bottomRightOverlay(toast, 1)
	}
	return canvas.Render()
}

func (m *App) renderHeader() string {
	title := "TIMEAGO"
	if m.version != "" {
		title = fmt.Sprintf("TIMEAGO v%s", m.version)
	}
	left := styleAppHeader.Render(title)

	status := fmt.Sprintf("%d entries", len(m.rows))
	if m.loading {
		status = "loading..."
	}
	left += " " + styleStatsDim.Render(status)

	if m.mods.Strict {
		left += " " + styleModePill.Render("STRICT")
	}
	if m.mods.Seconds {
		left += " " + styleModePill.Render("SECONDS")
	}

	if m.lastError == "" {
		return left
	}
	right := styleErrorIndicator.Render("⚠ feed error")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right + " "
}

func (m *App) renderList() string {
	lh := m.listHeight()
	var lines []string
	switch {
	case m.loading && len(m.rows) == 0:
		lines = []string{styleStatsDim.Render("Loading entries...")}
	case len(m.rows) == 0:
		lines = []string{styleStatsDim.Render("No entries.")}
	default:
		end := m.topLine + lh
		if end > len(m.rows) {
			end = len(m.rows)
		}
		lines = make([]string, 0, end-m.topLine)
		for i := m.topLine; i < end; i++ {
			lines = append(lines, m.renderRow(i))
		}
	}

	paneWidth := m.width - 2
	if paneWidth < 1 {
		paneWidth = 1
	}
	return stylePane.Width(paneWidth).Height(lh).Render(strings.Join(lines, "\n"))
}

func (m *App) renderRow(i int) string {
	e := m.rows[i].entry
	label := m.rows[i].label
	inner := m.width - 4
	if inner < 10 {
		inner = 10
	}

	timeText := label.Label()
	if timeText == "" {
		timeText = placeholderLabel
	}

	if i == m.cursor {
		// The selected row restyles as one block, so compose it unstyled.
		avail := inner - lipgloss.Width(timeText) - 4
		if avail < 1 {
			avail = 1
		}
		line := ansi.Truncate(fmt.Sprintf("%s  %s", e.ID, e.Title), avail, "…")
		pad := avail - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		return styleSelected.Render(fmt.Sprintf(" %s%s  %s ", line, strings.Repeat(" ", pad), timeText))
	}

	styledTime := styleTimePast.Render(timeText)
	if !label.IsPast() {
		styledTime = styleTimeFuture.Render(timeText)
	}
	id := styleEntryID.Render(e.ID)
	avail := inner - lipgloss.Width(id) - lipgloss.Width(timeText) - 6
	if avail < 1 {
		avail = 1
	}
	title := ansi.Truncate(e.Title, avail, "…")
	pad := avail - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf(" %s  %s%s  %s ", id, styleEntryTitle.Render(title), strings.Repeat(" ", pad), styledTime)
}

// renderDetail shows the selected entry: the absolute date, the exact gap,
// and the note rendered as markdown.
func (m *App) renderDetail() string {
	if len(m.rows) == 0 {
		return ""
	}
	e := m.rows[m.cursor].entry

	lines := []string{
		styleDetailField.Render("when") + " " + styleDetailValue.Render(formatAbsolute(e.At)),
	}
	now := distance.NewInstant(timeNow())
	if exact, err := distance.Exact(now, e.At); err == nil {
		future := e.At.Compare(now) > 0
		lines = append(lines,
			styleDetailField.Render("exact")+" "+styleDetailValue.Render(locale.Active().WithSuffix(exact, future)))
	}
	if e.Note != "" && m.renderMarkdown != nil {
		lines = append(lines, "", m.renderMarkdown(e.Note))
	}

	paneWidth := m.width - 2
	if paneWidth < 1 {
		paneWidth = 1
	}
	contentHeight := m.detailHeight() - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	return stylePane.Width(paneWidth).Height(contentHeight).Render(strings.Join(lines, "\n"))
}

// formatAbsolute writes the instant out long-form with the active locale's
// ordinal day, e.g. "Friday, March 1st 2024 at 12:00".
func formatAbsolute(in distance.Instant) string {
	t := in.Time()
	day := locale.Active().Ordinal(t.Day())
	return fmt.Sprintf("%s, %s %s %d at %s", t.Weekday(), t.Month(), day, t.Year(), t.Format("15:04"))
}

func (m *App) renderFooter() string {
	hints := [][2]string{
		{"↑/↓", "move"},
		{"s", "strict"},
		{"S", "seconds"},
		{"⏎", "detail"},
		{"c", "copy"},
		{"r", "reload"},
		{"?", "help"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styleKeyPill.Render(" "+h[0]+" ")+" "+styleKeyDesc.Render(h[1]))
	}
	left := " " + strings.Join(parts, "  ")

	right := ""
	if !m.lastRenderAt.IsZero() {
		right = styleFooterMuted.Render("updated "+m.lastRenderAt.Format("15:04:05")) + " "
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderCopyToast renders the copy confirmation if visible.
func (m *App) renderCopyToast() string {
	if !m.showCopyToast || m.copiedLabel == "" {
		return ""
	}
	elapsed := timeNow().Sub(m.copyToastStart)
	remaining := int(copyToastDuration.Seconds()) - int(elapsed.Seconds())
	if remaining < 0 {
		remaining = 0
	}

	msgLine := fmt.Sprintf("Copied %q to clipboard.", m.copiedLabel)
	countdown := fmt.Sprintf("[%ds]", remaining)

	toastWidth := lipgloss.Width(msgLine)
	if toastWidth < 26 {
		toastWidth = 26
	}
	padding := toastWidth - lipgloss.Width(countdown)
	if padding < 0 {
		padding = 0
	}
	content := fmt.Sprintf("%s\n%s%s", msgLine, strings.Repeat(" ", padding), countdown)
	return styleSuccessToast.Render(content)
}

// renderErrorToast renders the feed error callout if visible.
func (m *App) renderErrorToast() string {
	if !m.showErrorToast || m.lastError == "" {
		return ""
	}
	elapsed := timeNow().Sub(m.errorToastStart)
	remaining := int(errorToastDuration.Seconds()) - int(elapsed.Seconds())
	if remaining < 0 {
		remaining = 0
	}

	titleLine := "⚠ Feed error"
	errLine := ansi.Truncate(m.lastError, 60, "…")
	countdown := fmt.Sprintf("[%ds]", remaining)

	toastWidth := lipgloss.Width(errLine)
	if w := lipgloss.Width(titleLine); w > toastWidth {
		toastWidth = w
	}
	if toastWidth < 26 {
		toastWidth = 26
	}
	padding := toastWidth - lipgloss.Width(countdown)
	if padding < 0 {
		padding = 0
	}
	content := fmt.Sprintf("%s\n%s\n%s%s", titleLine, errLine, strings.Repeat(" ", padding), countdown)
	return styleErrorToast.Render(content)
}

func clampDimension(value, minValue, maxValue int) int {
	if maxValue < 1 {
		maxValue = 1
	}
	if minValue < 1 {
		minValue = 1
	}
	if minValue > maxValue {
		minValue = maxValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}
