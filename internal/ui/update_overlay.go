package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/debug"
)

// handleOverlayMsg processes overlay lifecycle and toast messages. Returns
// handled=false for everything it does not recognize.
func (m *App) handleOverlayMsg(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case HabitCreatedMsg:
		return m, m.executeCreateHabit(msg), true

	case CreateCancelledMsg:
		m.createOverlay = nil
		return m, nil, true

	case createCompleteMsg:
		model, cmd := m.handleCreateComplete(msg)
		return model, cmd, true

	case DeleteConfirmedMsg:
		return m, m.executeDeleteHabit(msg.HabitID, msg.Title), true

	case DeleteCancelledMsg:
		m.deleteOverlay = nil
		return m, nil, true

	case deleteCompleteMsg:
		model, cmd := m.handleDeleteComplete(msg)
		return model, cmd, true

	case NotesSavedMsg:
		return m, m.executeSaveNotes(msg.HabitID, msg.Notes), true

	case NotesCancelledMsg:
		m.notesOverlay = nil
		return m, nil, true

	case notesCompleteMsg:
		model, cmd := m.handleNotesComplete(msg)
		return model, cmd, true

	case doneCompleteMsg:
		model, cmd := m.handleDoneComplete(msg)
		return model, cmd, true

	case DismissErrorToastMsg:
		m.showErrorToast = false
		m.lastError = ""
		return m, nil, true

	case errorToastTickMsg:
		if !m.showErrorToast {
			return m, nil, true
		}
		if time.Since(m.errorToastStart) >= errorToastDuration {
			m.showErrorToast = false
			m.lastError = ""
			return m, nil, true
		}
		return m, scheduleErrorToastTick(), true

	case createToastTickMsg:
		if !m.createToastVisible {
			return m, nil, true
		}
		if time.Since(m.createToastStart) >= createToastDuration {
			m.createToastVisible = false
			return m, nil, true
		}
		return m, scheduleCreateToastTick(), true

	case deleteToastTickMsg:
		if !m.deleteToastVisible {
			return m, nil, true
		}
		if time.Since(m.deleteToastStart) >= deleteToastDuration {
			m.deleteToastVisible = false
			return m, nil, true
		}
		return m, scheduleDeleteToastTick(), true

	case copyToastTickMsg:
		if !m.copyToastVisible {
			return m, nil, true
		}
		if time.Since(m.copyToastStart) >= copyToastDuration {
			m.copyToastVisible = false
			return m, nil, true
		}
		return m, scheduleCopyToastTick(), true

	case themeToastTickMsg:
		if !m.themeToastVisible {
			return m, nil, true
		}
		if time.Since(m.themeToastStart) >= themeToastDuration {
			m.themeToastVisible = false
			return m, nil, true
		}
		return m, scheduleThemeToastTick(), true

	case notesToastTickMsg:
		if !m.notesToastVisible {
			return m, nil, true
		}
		if time.Since(m.notesToastStart) >= notesToastDuration {
			m.notesToastVisible = false
			return m, nil, true
		}
		return m, scheduleNotesToastTick(), true
	}

	return m, nil, false
}

// handleCreateComplete finishes a create call. On failure the overlay stays
// open with the draft intact; on success it closes and the list reloads.
func (m *App) handleCreateComplete(msg createCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debug.Logf("create habit failed: %v", msg.err)
		m.lastError = msg.err.Error()
		m.showErrorToast = true
		m.errorToastStart = time.Now()

		cmds := []tea.Cmd{scheduleErrorToastTick()}
		if m.createOverlay != nil {
			var cmd tea.Cmd
			m.createOverlay, cmd = m.createOverlay.Update(backendErrorMsg{})
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	m.createOverlay = nil
	m.createToastVisible = true
	m.createToastStart = time.Now()
	m.createToastHabitID = msg.id
	m.createToastTitle = msg.title

	cmds := []tea.Cmd{scheduleCreateToastTick()}
	if cmd := m.forceRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *App) handleDeleteComplete(msg deleteCompleteMsg) (tea.Model, tea.Cmd) {
	m.deleteOverlay = nil

	if msg.err != nil {
		debug.Logf("delete habit failed: %v", msg.err)
		m.lastError = msg.err.Error()
		m.showErrorToast = true
		m.errorToastStart = time.Now()
		return m, scheduleErrorToastTick()
	}

	m.deleteToastVisible = true
	m.deleteToastStart = time.Now()
	m.deleteToastHabitID = msg.id

	cmds := []tea.Cmd{scheduleDeleteToastTick()}
	if cmd := m.forceRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleNotesComplete keeps the editor open on failure so nothing typed is
// lost.
func (m *App) handleNotesComplete(msg notesCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debug.Logf("save notes failed: %v", msg.err)
		m.lastError = msg.err.Error()
		m.showErrorToast = true
		m.errorToastStart = time.Now()
		return m, scheduleErrorToastTick()
	}

	m.notesOverlay = nil
	m.notesToastVisible = true
	m.notesToastStart = time.Now()
	m.notesToastHabitID = msg.id

	cmds := []tea.Cmd{scheduleNotesToastTick()}
	if cmd := m.forceRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *App) handleDoneComplete(msg doneCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debug.Logf("toggle done failed: %v", msg.err)
		m.lastError = msg.err.Error()
		m.showErrorToast = true
		m.errorToastStart = time.Now()
		cmds := []tea.Cmd{scheduleErrorToastTick()}
		if cmd := m.forceRefresh(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	m.doneToday[msg.id] = msg.done
	if m.showDetails {
		m.syncDetailViewport()
		return m, m.loadHistory(msg.id)
	}
	return m, nil
}
