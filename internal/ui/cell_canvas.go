package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered strings into a cellbuf.Screen before
// turning the frame back into a string for Bubble Tea. Overlays drawn later
// paint over whatever is already on the canvas.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	normalized := normalizeForCellbuf(content)
	c.writer.PrintCropAt(x, y, normalized, "")
}

// centerOverlay draws the overlay centered within the canvas while keeping
// topMargin/bottomMargin rows clear so the header and footer stay visible.
func (c *Canvas) centerOverlay(overlay string, topMargin, bottomMargin int) {
	lines := overlayLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	if topMargin < 0 {
		topMargin = 0
	}
	if bottomMargin < 0 {
		bottomMargin = 0
	}

	overlayHeight := len(lines)
	overlayWidth := maxLineWidth(lines)
	if overlayWidth > c.width {
		overlayWidth = c.width
	}

	usableHeight := c.height - topMargin - bottomMargin
	if usableHeight < overlayHeight {
		usableHeight = overlayHeight
	}
	startY := topMargin
	if usableHeight > overlayHeight {
		startY = topMargin + (usableHeight-overlayHeight)/2
	}
	if maxStartY := c.height - bottomMargin - overlayHeight; startY > maxStartY {
		startY = maxStartY
	}
	if startY < topMargin {
		startY = topMargin
	}
	if startY < 0 {
		startY = 0
	}

	startX := (c.width - overlayWidth) / 2
	if startX < 0 {
		startX = 0
	}
	c.blit(startX, startY, lines)
}

// bottomRightOverlay anchors the overlay to the bottom-right corner with the
// provided padding inside the canvas.
func (c *Canvas) bottomRightOverlay(overlay string, padding int) {
	lines := overlayLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	if padding < 0 {
		padding = 0
	}

	startY := c.height - len(lines) - padding
	if startY < 0 {
		startY = 0
	}
	startX := c.width - maxLineWidth(lines) - padding
	if startX < 0 {
		startX = 0
	}
	c.blit(startX, startY, lines)
}

func (c *Canvas) blit(x, y int, lines []string) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string suitable
// for Bubble Tea consumption. The canvas is spent afterwards.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

// cellbuf treats bare \n as line feed without carriage return.
func normalizeForCellbuf(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\n", "\r\n")
}

func overlayLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return widest
}
