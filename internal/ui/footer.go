package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string // Short symbol: "↑↓", "⏎", "/", etc.
	desc string // Short description: "Navigate", "Detail", etc.
}

// Global footer hints (always shown)
var globalFooterHints = []footerHint{
	{"n", "New"},
	{"/", "Filter"},
	{"⏎", "Detail"},
	{"q", "Quit"},
	{"?", "Help"},
}

// Context-specific footer hints
var listFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"␣", "Done"},
}

var detailsFooterHints = []footerHint{
	{"↑↓", "Scroll"},
	{"e", "Notes"},
}

// renderFooter renders the footer bar with pill-style key hints.
func (m *App) renderFooter() string {
	var hints []footerHint

	// Context-specific keys (shown first, leftmost)
	switch m.focus {
	case FocusList:
		hints = append(hints, listFooterHints...)
	case FocusDetail:
		hints = append(hints, detailsFooterHints...)
	}

	// Global keys
	hints = append(hints, globalFooterHints...)

	userText := "User: " + m.userID
	userRendered := styleFooterMuted().Render(userText)
	userWidth := lipgloss.Width(userRendered)
	availableWidth := m.width - userWidth - 4

	// Progressively remove hints if too wide
	hints = trimHintsToFit(hints, availableWidth)

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}

	left := strings.Join(parts, "  ")
	leftWidth := lipgloss.Width(left)

	spacing := m.width - leftWidth - userWidth
	if spacing < 2 {
		spacing = 2
	}

	return left + strings.Repeat(" ", spacing) + userRendered
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit progressively removes hints to fit available width.
// Removes context-specific hints first, then global hints from end.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	globalCount := len(globalFooterHints)

	for len(hints) > 0 {
		rendered := renderHintsWidth(hints)
		if rendered <= availableWidth {
			break
		}
		if len(hints) > globalCount {
			hints = hints[1:]
		} else {
			hints = hints[:len(hints)-1]
		}
	}
	return hints
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}

// overlayFooterLine renders hints on the overlay background, padded to width.
func overlayFooterLine(hints []footerHint, width int) string {
	var parts []string
	for _, h := range hints {
		pill := styleKeyPill().Render(" "+h.key+" ") +
			styleOverlayMuted().Render(" "+h.desc)
		parts = append(parts, pill)
	}
	line := strings.Join(parts, styleOverlayMuted().Render("  "))
	gap := width - lipgloss.Width(line)
	if gap > 0 {
		line += styleOverlayMuted().Render(strings.Repeat(" ", gap))
	}
	return line
}
