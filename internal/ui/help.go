package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpSection groups keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // Each row: [keys, description]
}

// getHelpSections returns the help content organized into sections.
// Layout is explicit - each section lists which bindings appear in which
// order. Text is derived from binding.Help() to maintain a single source
// of truth.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "Navigation",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Home.Help().Key, keys.Home.Help().Desc},
				{keys.End.Help().Key, keys.End.Help().Desc},
				{keys.PageUp.Help().Key, keys.PageUp.Help().Desc},
				{keys.PageDown.Help().Key, keys.PageDown.Help().Desc},
			},
		},
		{
			title: "Display",
			rows: [][]string{
				{keys.Strict.Help().Key, keys.Strict.Help().Desc},
				{keys.Seconds.Help().Key, keys.Seconds.Help().Desc},
				{keys.Detail.Help().Key, keys.Detail.Help().Desc},
			},
		},
		{
			title: "Actions",
			rows: [][]string{
				{keys.Copy.Help().Key, keys.Copy.Help().Desc},
				{keys.Refresh.Help().Key, keys.Refresh.Help().Desc},
				{keys.Help.Help().Key, keys.Help.Help().Desc},
				{keys.Quit.Help().Key, keys.Quit.Help().Desc},
			},
		},
	}
}

// helpMarkdown renders the sections as a markdown document so the overlay
// body goes through the same renderer as entry notes.
func helpMarkdown(keys KeyMap) string {
	var b strings.Builder
	for i, section := range getHelpSections(keys) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", section.title)
		for _, row := range section.rows {
			fmt.Fprintf(&b, "- `%s`: %s\n", row[0], row[1])
		}
	}
	return b.String()
}

// renderHelpOverlay builds the bordered help modal. The body is markdown fed
// through buildMarkdownRenderer, so output.format controls its styling and
// the plain fallback still word-wraps.
func renderHelpOverlay(keys KeyMap, format string, maxWidth int) string {
	bodyWidth := maxWidth - 8
	if bodyWidth > 52 {
		bodyWidth = 52
	}
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	body := buildMarkdownRenderer(format, bodyWidth)(helpMarkdown(keys))

	title := styleHelpTitle.Render("✦ TIMEAGO HELP ✦")
	dividerWidth := maxLineWidth(overlayLines(body))
	if dividerWidth < lipgloss.Width(title) {
		dividerWidth = lipgloss.Width(title)
	}
	divider := styleHelpDivider.Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter.Render("Press ? or Esc to close")

	// Pad the body to a uniform width first; JoinVertical aligns each line
	// individually, which would otherwise center the bullets.
	bodyBlock := lipgloss.NewStyle().Width(dividerWidth).Render(body)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		bodyBlock,
		"",
		footer,
	)
	return styleHelpOverlay.Render(content)
}
