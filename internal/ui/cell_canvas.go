package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas is the compositing buffer the View draws into when an overlay or a
// toast must be painted over the main frame. lipgloss cannot place a block at
// an arbitrary cell position, so the finished frame goes through cellbuf.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints every cell with the background color, so regions no block is
// drawn into still carry the theme instead of the terminal default.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil || c.writer == nil {
		return
	}
	row := lipgloss.NewStyle().Background(bg).Width(c.width).Render("")
	for y := 0; y < c.height; y++ {
		c.writer.PrintCropAt(0, y, row, "")
	}
}

// DrawStringAt writes a block with its top-left corner at x,y. Content past
// the right or bottom edge is cropped.
func (c *Canvas) DrawStringAt(x, y int, block string) {
	c.drawLines(x, y, splitLines(block))
}

// centerOverlay paints the overlay horizontally centered and vertically
// centered within the band between topMargin and bottomMargin, keeping the
// header and footer visible around a modal.
func (c *Canvas) centerOverlay(overlay string, topMargin, bottomMargin int) {
	lines := splitLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	free := c.height - topMargin - bottomMargin - len(lines)
	y := topMargin
	if free > 0 {
		y += free / 2
	}
	x := (c.width - maxLineWidth(lines)) / 2
	c.drawLines(x, y, lines)
}

// bottomRightOverlay anchors the overlay to the bottom-right corner, inset by
// padding on both axes. Toasts land here.
func (c *Canvas) bottomRightOverlay(overlay string, padding int) {
	lines := splitLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	x := c.width - maxLineWidth(lines) - padding
	y := c.height - len(lines) - padding
	c.drawLines(x, y, lines)
}

func (c *Canvas) drawLines(x, y int, lines []string) {
	if c == nil || c.writer == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	for i, line := range lines {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render flattens the buffer into the newline-delimited frame bubbletea
// expects. The canvas is spent afterwards.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	frame := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(frame, "\r\n", "\n")
}

func splitLines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
}
