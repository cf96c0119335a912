package ui

import (
	"fmt"
	"strings"

	"cadence/internal/domain"
	"cadence/internal/habits"
)

// syncDetailViewport rebuilds the right pane content for the selected habit.
func (m *App) syncDetailViewport() {
	h, ok := m.currentHabit()
	if !ok {
		m.viewport.SetContent(styleMutedText().Render("Nothing selected"))
		return
	}
	m.viewport.SetContent(m.renderDetail(h.ID))
	m.viewport.GotoTop()
}

func (m *App) renderDetail(id string) string {
	h, ok := m.habitByID(id)
	if !ok {
		return styleMutedText().Render("Nothing selected")
	}

	var lines []string

	lines = append(lines, styleID().Render(h.ID)+"  "+styleNormalText().Bold(true).Render(h.Title))
	lines = append(lines, "")

	lines = append(lines, styleField().Render("Days")+styleVal().Render(fullDayNames(h.Frequency)))

	status := "not done today"
	if m.doneToday[h.ID] {
		status = "done today ✓"
	}
	lines = append(lines, styleField().Render("Today")+styleVal().Render(status))

	if history, ok := m.history[h.ID]; ok {
		lines = append(lines, styleField().Render("History")+styleVal().Render(describeHistory(history)))
	}

	if created := parseCreatedAt(h.CreatedAt); !created.IsZero() {
		lines = append(lines, styleField().Render("Created")+styleVal().Render(FormatRelativeTime(created)))
	}
	if h.OwnerID != "" {
		lines = append(lines, styleField().Render("Owner")+styleVal().Render(h.OwnerID))
	}

	if strings.TrimSpace(h.Notes) != "" {
		lines = append(lines, "")
		lines = append(lines, styleSectionHeader().Render("NOTES"))
		render := buildMarkdownRenderer(m.markdownStyle, m.viewport.Width-2)
		lines = append(lines, render(h.Notes))
	}

	return strings.Join(lines, "\n")
}

func (m *App) habitByID(id string) (habits.Habit, bool) {
	for _, h := range m.habits {
		if h.ID == id {
			return h, true
		}
	}
	return habits.Habit{}, false
}

// describeHistory summarizes a habit's completion history for the detail pane.
func describeHistory(history []habits.Completion) string {
	switch len(history) {
	case 0:
		return "no completions yet"
	case 1:
		return "1 completion, last on " + history[len(history)-1].Day
	default:
		return fmt.Sprintf("%d completions, last on %s", len(history), history[len(history)-1].Day)
	}
}

// fullDayNames expands the stored "Mon,Wed" form to long names for the detail
// pane.
func fullDayNames(frequency string) string {
	freq, err := domain.ParseFrequency(frequency)
	if err != nil || len(freq) == 0 {
		return frequency
	}
	names := make([]string, 0, len(freq))
	for _, d := range freq {
		names = append(names, d.Full())
	}
	return strings.Join(names, ", ")
}
