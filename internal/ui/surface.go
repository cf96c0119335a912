package ui

import (
	"github.com/charmbracelet/lipgloss"

	"cadence/internal/ui/theme"
)

// Overlay boxes are styled with the secondary background, but lipgloss only
// colors cells it renders glyphs into. Re-rendering the box onto a canvas
// pre-filled with the same background guarantees every cell under the box is
// painted before the box is composited over the main frame.

func onSecondarySurface(overlay string) string {
	return onSurface(overlay, theme.Current().BackgroundSecondary())
}

func onSurface(overlay string, bg lipgloss.TerminalColor) string {
	lines := splitLines(overlay)
	if len(lines) == 0 {
		return ""
	}
	canvas := NewCanvas(maxLineWidth(lines), len(lines))
	canvas.Fill(bg)
	canvas.DrawStringAt(0, 0, overlay)
	return canvas.Render()
}
