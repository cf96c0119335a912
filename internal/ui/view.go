package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. The main frame is drawn first, then any open
// overlay and the active toast are composited on top via the cell canvas.
func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()

	listHeight := clampDimension(m.height-4, minListHeight, m.height-2)
	var mainBody string
	if m.showDetails {
		leftStyle := stylePane()
		rightStyle := stylePane()
		if m.focus == FocusList {
			leftStyle = stylePaneFocused()
		} else {
			rightStyle = stylePaneFocused()
		}

		rightWidth := m.viewport.Width
		if rightWidth < 1 {
			rightWidth = 1
		}
		leftWidth := m.width - rightWidth - 4
		if leftWidth < 1 {
			leftWidth = 1
		}

		left := leftStyle.Width(leftWidth).Height(listHeight).Render(m.renderHabitList(leftWidth, listHeight))
		right := rightStyle.Width(rightWidth).Height(listHeight).Render(m.viewport.View())
		mainBody = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		singleWidth := m.width - 2
		if singleWidth < 1 {
			singleWidth = 1
		}
		mainBody = stylePane().Width(singleWidth).Height(listHeight).Render(m.renderHabitList(singleWidth, listHeight))
	}

	var bottomBar string
	if m.filtering {
		bottomBar = m.filterInput.View()
	} else {
		bottomBar = m.renderFooter()
	}

	// Help takes visual precedence over everything.
	if m.showHelp {
		helpOverlay := renderHelpOverlay(m.keys, m.width, m.height-2)
		return fmt.Sprintf("%s\n%s\n%s", header, helpOverlay, bottomBar)
	}

	frame := fmt.Sprintf("%s\n%s\n%s", header, mainBody, bottomBar)

	overlay := m.activeOverlayView()
	toast := m.activeToast()
	if overlay == "" && toast == "" {
		return frame
	}

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, frame)
	if overlay != "" {
		canvas.centerOverlay(onSecondarySurface(overlay), 1, 2)
	}
	if toast != "" {
		canvas.bottomRightOverlay(toast, 2)
	}
	return canvas.Render()
}

func (m *App) activeOverlayView() string {
	switch {
	case m.createOverlay != nil:
		return m.createOverlay.View()
	case m.deleteOverlay != nil:
		return m.deleteOverlay.View()
	case m.notesOverlay != nil:
		return m.notesOverlay.View()
	}
	return ""
}

func (m *App) renderHeader() string {
	doneCount := 0
	for _, h := range m.habits {
		if m.doneToday[h.ID] {
			doneCount++
		}
	}

	status := fmt.Sprintf("Habits: %d", len(m.habits))
	if len(m.habits) > 0 {
		status += fmt.Sprintf(" • %d/%d done today", doneCount, len(m.habits))
	}
	status = styleHeaderStats().Render(status)

	if m.filterText != "" {
		status += " " + styleFilterInfo().Render("Filter: "+m.filterText)
	}

	if m.refreshInFlight {
		status += " " + m.spinner.View()
	} else if m.lastRefreshStats != "" && time.Since(m.lastRefreshTime) < 5*time.Second {
		status += " " + styleStatsDim().Render("Δ "+m.lastRefreshStats)
	}

	title := "CADENCE"
	if m.version != "" {
		title = "CADENCE v" + m.version
	}

	leftContent := styleAppHeader().Render(title) + " " + status
	if m.lastError == "" {
		return leftContent
	}

	rightContent := styleErrorIndicator().Render("⚠ Backend error")
	gap := m.width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent) - 2
	if gap > 0 {
		return leftContent + strings.Repeat(" ", gap) + rightContent
	}
	return leftContent + " " + rightContent
}
