package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func canvasLines(t *testing.T, c *Canvas) []string {
	t.Helper()
	return strings.Split(c.Render(), "\n")
}

func TestCanvasNormalizesNewlines(t *testing.T) {
	canvas := NewCanvas(8, 4)
	canvas.DrawStringAt(0, 0, "A\nB")

	lines := canvasLines(t, canvas)
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(lines))
	}
	if got := strings.TrimSpace(ansi.Strip(lines[0])); got != "A" {
		t.Fatalf("line 0 mismatch, expected A got %q", got)
	}
	if got := strings.TrimSpace(ansi.Strip(lines[1])); got != "B" {
		t.Fatalf("line 1 mismatch, expected B got %q", got)
	}
}

func TestCanvasDrawOffsetKeepsColumn(t *testing.T) {
	canvas := NewCanvas(10, 4)
	canvas.DrawStringAt(3, 1, "X\nY")

	lines := canvasLines(t, canvas)
	if idx := strings.Index(ansi.Strip(lines[1]), "X"); idx != 3 {
		t.Fatalf("expected X at column 3, got %d", idx)
	}
	// A bare \n would drift without the carriage-return normalization; the
	// continuation line starts back at column 0.
	if idx := strings.Index(ansi.Strip(lines[2]), "Y"); idx != 0 {
		t.Fatalf("expected Y at column 0, got %d", idx)
	}
}

func TestCanvasCenterOverlayPositionsContent(t *testing.T) {
	const width, height = 20, 10
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, lipgloss.NewStyle().Width(width).Height(height).Render(""))

	canvas.centerOverlay("AA\nBB", 1, 1)
	lines := canvasLines(t, canvas)

	expectedRow := 4 // topMargin 1 + (8 usable - 2 overlay)/2
	if len(lines) <= expectedRow+1 {
		t.Fatalf("not enough lines rendered, got %d", len(lines))
	}
	if idx := strings.Index(ansi.Strip(lines[expectedRow]), "AA"); idx != 9 {
		t.Fatalf("expected overlay 'AA' centered at column 9, got column %d", idx)
	}
	if idx := strings.Index(ansi.Strip(lines[expectedRow+1]), "BB"); idx != 9 {
		t.Fatalf("expected overlay 'BB' centered at column 9, got column %d", idx)
	}
}

func TestCanvasCenterOverlayPaintsOverBase(t *testing.T) {
	const width, height = 12, 5
	canvas := NewCanvas(width, height)
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat("#", width)+"\n", height), "\n")
	canvas.DrawStringAt(0, 0, base)

	canvas.centerOverlay("OK", 0, 0)
	lines := canvasLines(t, canvas)

	mid := ansi.Strip(lines[2])
	if !strings.Contains(mid, "OK") {
		t.Fatalf("expected the overlay over the base frame, got %q", mid)
	}
	if !strings.HasPrefix(mid, "#####") {
		t.Fatalf("expected the base frame around the overlay, got %q", mid)
	}
}

func TestCanvasBottomRightOverlayAnchorsToast(t *testing.T) {
	const width, height = 30, 6
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, lipgloss.NewStyle().Width(width).Height(height).Render(""))

	canvas.bottomRightOverlay("ERR", 1)
	lines := canvasLines(t, canvas)
	targetRow := height - 1 - 1 // padding of 1
	line := ansi.Strip(lines[targetRow])

	idx := strings.Index(line, "ERR")
	if idx == -1 {
		t.Fatalf("expected toast text in row %d, got %q", targetRow, line)
	}
	if idx < width-len("ERR")-2 {
		t.Fatalf("expected toast near right edge, got column %d", idx)
	}
}

func TestCanvasClampsDegenerateSizes(t *testing.T) {
	canvas := NewCanvas(0, -3)
	canvas.DrawStringAt(0, 0, "Z")
	if out := ansi.Strip(canvas.Render()); !strings.Contains(out, "Z") {
		t.Fatalf("expected a minimum 1x1 canvas to hold content, got %q", out)
	}
}
