package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlay lifecycle and toast messages are handled before anything else so
	// they work no matter which pane has focus.
	if model, cmd, handled := m.handleOverlayMsg(msg); handled {
		return model, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		return m.handleTick()

	case refreshCompleteMsg:
		return m.handleRefreshComplete(msg)

	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case spinner.TickMsg:
		if m.refreshInFlight {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.overlayActive() {
			return m, m.updateActiveOverlay(msg)
		}
		return m.handleKey(msg)

	default:
		// Blink ticks, flash timers and other component messages belong to the
		// open overlay or to the filter input.
		if m.overlayActive() {
			return m, m.updateActiveOverlay(msg)
		}
		if m.filtering {
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	detailWidth := m.width / 2
	if detailWidth < 20 {
		detailWidth = 20
	}
	m.viewport.Width = detailWidth
	m.viewport.Height = clampDimension(m.height-4, minListHeight, m.height-2)
	if m.showDetails {
		m.syncDetailViewport()
	}
	return m, nil
}

func (m *App) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{scheduleTick(m.refreshInterval)}
	if m.autoRefresh && !m.refreshInFlight && m.dbChangedOnDisk() {
		if cmd := m.forceRefresh(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *App) handleRefreshComplete(msg refreshCompleteMsg) (tea.Model, tea.Cmd) {
	m.applyRefresh(msg)
	if msg.err != nil {
		m.showErrorToast = true
		m.errorToastStart = timeNow()
		return m, scheduleErrorToastTick()
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.filtering = true
		m.filterInput.SetValue(m.filterText)
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		return m.handleEscape()

	case key.Matches(msg, m.keys.New):
		m.createOverlay = NewCreateOverlay()
		return m, m.createOverlay.Init()

	case key.Matches(msg, m.keys.Delete):
		if h, ok := m.currentHabit(); ok {
			m.deleteOverlay = NewDeleteOverlay(h.ID, h.Title)
		}
		return m, nil

	case key.Matches(msg, m.keys.Notes):
		if h, ok := m.currentHabit(); ok {
			m.notesOverlay = NewNotesOverlay(h.ID, h.Title, h.Notes)
			return m, m.notesOverlay.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyHabitID()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.forceRefresh()

	case key.Matches(msg, m.keys.Theme):
		return m, m.cycleTheme()

	case key.Matches(msg, m.keys.Space):
		return m, m.toggleDoneToday()

	case key.Matches(msg, m.keys.Enter):
		m.showDetails = !m.showDetails
		if m.showDetails {
			m.focus = FocusDetail
			m.syncDetailViewport()
			return m, m.loadCurrentHistory()
		}
		m.focus = FocusList
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.showDetails {
			if m.focus == FocusList {
				m.focus = FocusDetail
			} else {
				m.focus = FocusList
			}
		}
		return m, nil
	}

	return m.handleNavigationKey(msg)
}

func (m *App) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showDetails && m.focus == FocusDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.listPageSize()
		m.clampCursor()
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.listPageSize()
		m.clampCursor()
	default:
		return m, nil
	}

	if m.showDetails {
		m.syncDetailViewport()
		return m, m.loadCurrentHistory()
	}
	return m, nil
}

// loadCurrentHistory requests completion history for the habit under the
// cursor, if any.
func (m *App) loadCurrentHistory() tea.Cmd {
	h, ok := m.currentHabit()
	if !ok {
		return nil
	}
	return m.loadHistory(h.ID)
}

func (m *App) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The detail pane just omits the history line; not worth a toast.
		return m, nil
	}
	m.history[msg.id] = msg.completions
	if h, ok := m.currentHabit(); ok && m.showDetails && h.ID == msg.id {
		m.syncDetailViewport()
	}
	return m, nil
}

func (m *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filterText = ""
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.recalcVisible()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterText = m.filterInput.Value()
	m.recalcVisible()
	return m, cmd
}

// handleEscape unwinds UI state one level at a time.
func (m *App) handleEscape() (tea.Model, tea.Cmd) {
	switch {
	case m.showErrorToast:
		m.showErrorToast = false
		m.lastError = ""
	case m.filterText != "":
		m.filterText = ""
		m.filterInput.SetValue("")
		m.recalcVisible()
	case m.showDetails:
		m.showDetails = false
		m.focus = FocusList
	}
	return m, nil
}

// toggleDoneToday flips today's completion for the selected habit.
func (m *App) toggleDoneToday() tea.Cmd {
	h, ok := m.currentHabit()
	if !ok {
		return nil
	}
	return m.executeSetDone(h.ID, !m.doneToday[h.ID])
}

// updateActiveOverlay forwards a message to whichever modal is open.
func (m *App) updateActiveOverlay(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.createOverlay != nil:
		m.createOverlay, cmd = m.createOverlay.Update(msg)
	case m.deleteOverlay != nil:
		m.deleteOverlay, cmd = m.deleteOverlay.Update(msg)
	case m.notesOverlay != nil:
		m.notesOverlay, cmd = m.notesOverlay.Update(msg)
	}
	return cmd
}

func (m *App) listPageSize() int {
	size := m.height - 6
	if size < 1 {
		size = 1
	}
	return size
}

func clampDimension(value, min, max int) int {
	if value < min {
		return min
	}
	if max >= min && value > max {
		return max
	}
	return value
}
