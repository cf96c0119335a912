package ui

import (
	"strings"

	"cadence/internal/domain"
)

// renderHabitList renders the scrollable habit rows for the left pane.
func (m *App) renderHabitList(width, height int) string {
	if len(m.visible) == 0 {
		if m.filterText != "" {
			return styleMutedText().Render("No habits match " + "\"" + m.filterText + "\"")
		}
		return styleMutedText().Render("No habits yet. Press n to create one.")
	}

	top := m.listWindowTop(height)
	var rows []string
	for pos := top; pos < len(m.visible) && pos-top < height; pos++ {
		rows = append(rows, m.renderHabitRow(pos, width))
	}
	return strings.Join(rows, "\n")
}

// listWindowTop returns the first visible row index so the cursor stays inside
// the window.
func (m *App) listWindowTop(height int) int {
	if height <= 0 {
		return 0
	}
	top := m.cursor - height + 1
	if top < 0 {
		top = 0
	}
	return top
}

func (m *App) renderHabitRow(pos, width int) string {
	h := m.habits[m.visible[pos]]

	mark := "○"
	markStyle := styleMutedText()
	if m.doneToday[h.ID] {
		mark = "✓"
		markStyle = styleDoneMark()
	}

	days := compactDays(h.Frequency)

	idPart := styleID().Render(h.ID)
	daysPart := styleStatsDim().Render(days)

	// mark + id + days + padding around the title
	fixed := 2 + len(h.ID) + 2 + len(days) + 2
	titleWidth := width - fixed
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := truncateTitle(h.Title, titleWidth)

	line := markStyle.Render(mark) + " " + idPart + "  "
	if pos == m.cursor {
		line += styleRowSelected().Render(title)
	} else if m.doneToday[h.ID] {
		line += styleMutedText().Render(title)
	} else {
		line += styleNormalText().Render(title)
	}
	line += "  " + daysPart
	return line
}

// compactDays shortens a stored frequency to one letter per day, keeping the
// user's selection order.
func compactDays(frequency string) string {
	freq, err := domain.ParseFrequency(frequency)
	if err != nil || len(freq) == 0 {
		return frequency
	}
	letters := make([]string, 0, len(freq))
	for _, d := range freq {
		letters = append(letters, string(d)[:1])
	}
	return strings.Join(letters, "·")
}
