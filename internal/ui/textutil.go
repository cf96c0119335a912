package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// maxLineWidth returns the widest visual line in the block, ignoring ANSI
// escape sequences.
func maxLineWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}

// truncateTitle shortens a title to max visual cells, appending an ellipsis
// when anything was cut. Safe to call on styled strings.
func truncateTitle(title string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(title) <= max {
		return title
	}
	if max <= 1 {
		return ansi.Truncate(title, max, "")
	}
	return ansi.Truncate(title, max, "…")
}

// stripANSI removes escape sequences, leaving printable text only.
func stripANSI(s string) string {
	return ansi.Strip(s)
}

// extractShortError flattens a (possibly multi-line, possibly wrapped) error
// string into a single line capped at max cells.
func extractShortError(errStr string, max int) string {
	line := errStr
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	return truncateTitle(line, max)
}
