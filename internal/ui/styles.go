package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	cPurple     = lipgloss.Color("99")
	cCyan       = lipgloss.Color("39")
	cNeonGreen  = lipgloss.Color("118")
	cRed        = lipgloss.Color("203")
	cOrange     = lipgloss.Color("208")
	cGold       = lipgloss.Color("220")
	cGray       = lipgloss.Color("240")
	cBrightGray = lipgloss.Color("246")
	cLightGray  = lipgloss.Color("250")
	cWhite      = lipgloss.Color("255")
	cHighlight  = lipgloss.Color("57")

	styleAppHeader = lipgloss.NewStyle().
			Foreground(cWhite).
			Background(cPurple).
			Bold(true).
			Padding(0, 1)

	// styleModePill marks active strict/seconds toggles in the header.
	styleModePill = lipgloss.NewStyle().
			Foreground(cWhite).
			Background(cOrange).
			Bold(true).
			Padding(0, 1)

	styleStatsDim = lipgloss.NewStyle().Foreground(cBrightGray)

	styleEntryID    = lipgloss.NewStyle().Foreground(cGold).Bold(true)
	styleEntryTitle = lipgloss.NewStyle().Foreground(cWhite)

	styleTimePast   = lipgloss.NewStyle().Foreground(cCyan)
	styleTimeFuture = lipgloss.NewStyle().Foreground(cNeonGreen)

	styleSelected = lipgloss.NewStyle().
			Background(cHighlight).
			Foreground(cWhite).
			Bold(true)

	stylePane = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(cGray)

	styleDetailField = lipgloss.NewStyle().
				Foreground(cCyan).
				Bold(true).
				Width(8)

	styleDetailValue = lipgloss.NewStyle().Foreground(cLightGray)

	styleErrorToast = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cRed).
			Foreground(cWhite).
			Padding(0, 1)

	styleErrorIndicator = lipgloss.NewStyle().
				Foreground(cRed).
				Bold(true)

	styleSuccessToast = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cNeonGreen).
				Foreground(cWhite).
				Padding(0, 1)

	// Help overlay styles
	styleHelpOverlay = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cPurple).
				Padding(1, 2)

	styleHelpTitle = lipgloss.NewStyle().
			Foreground(cGold).
			Bold(true)

	styleHelpDivider = lipgloss.NewStyle().
				Foreground(cPurple)

	styleHelpFooter = lipgloss.NewStyle().
			Foreground(cBrightGray).
			Italic(true)

	// Footer bar styles
	styleKeyPill = lipgloss.NewStyle().
			Background(cPurple).
			Foreground(cWhite).
			Bold(true)

	styleKeyDesc = lipgloss.NewStyle().
			Foreground(cBrightGray)

	styleFooterMuted = lipgloss.NewStyle().
				Foreground(cBrightGray)
)

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
