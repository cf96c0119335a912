package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// filledCanvas returns a canvas with every cell painted, the way View uses it.
func filledCanvas(width, height int) *Canvas {
	c := NewCanvas(width, height)
	c.Fill(lipgloss.NoColor{})
	return c
}

func canvasLines(c *Canvas) []string {
	return strings.Split(stripANSI(c.Render()), "\n")
}

func findInLines(lines []string, needle string) (row, col int) {
	for y, line := range lines {
		if x := strings.Index(line, needle); x >= 0 {
			return y, x
		}
	}
	return -1, -1
}

func TestCanvasDrawStringAt(t *testing.T) {
	c := filledCanvas(20, 5)
	c.DrawStringAt(3, 1, "hi\nthere")

	lines := canvasLines(c)
	if row, col := findInLines(lines, "hi"); row != 1 || col != 3 {
		t.Errorf("'hi' at (%d,%d), expected (1,3)", row, col)
	}
	if row, col := findInLines(lines, "there"); row != 2 || col != 3 {
		t.Errorf("'there' at (%d,%d), expected (2,3)", row, col)
	}
}

func TestCanvasCenterOverlay(t *testing.T) {
	c := filledCanvas(40, 12)
	c.centerOverlay("XXXX\nXXXX", 1, 2)

	lines := canvasLines(c)
	row, col := findInLines(lines, "XXXX")
	if row < 0 {
		t.Fatal("overlay not drawn")
	}
	// 9 usable rows for a 2-line overlay centers it at row 1+3=4.
	if row != 4 {
		t.Errorf("overlay row = %d, expected 4", row)
	}
	if col != 18 {
		t.Errorf("overlay col = %d, expected 18", col)
	}
}

func TestCanvasCenterOverlayRespectsMargins(t *testing.T) {
	c := filledCanvas(30, 6)
	c.centerOverlay("AA\nAA\nAA\nAA", 1, 1)

	lines := canvasLines(c)
	row, _ := findInLines(lines, "AA")
	if row != 1 {
		t.Errorf("overlay row = %d, expected pinned to top margin 1", row)
	}
}

func TestCanvasBottomRightOverlay(t *testing.T) {
	c := filledCanvas(30, 10)
	c.bottomRightOverlay("TOAST", 2)

	lines := canvasLines(c)
	row, col := findInLines(lines, "TOAST")
	if row != 7 {
		t.Errorf("toast row = %d, expected 7", row)
	}
	if col != 23 {
		t.Errorf("toast col = %d, expected 23", col)
	}
}

func TestCanvasCropsOversizeContent(t *testing.T) {
	c := filledCanvas(5, 2)
	c.DrawStringAt(0, 0, "0123456789")

	lines := canvasLines(c)
	if strings.Contains(strings.Join(lines, "\n"), "56789") {
		t.Error("content past the right edge was not cropped")
	}
}
