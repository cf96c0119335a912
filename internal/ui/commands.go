package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/habits"
)

// executeCreateHabit turns a validated form submission into a single backend
// create call.
func (m *App) executeCreateHabit(msg HabitCreatedMsg) tea.Cmd {
	client := m.client
	draft := habits.NewHabit{
		Title:     msg.Title,
		Frequency: msg.Days.String(),
		OwnerID:   m.userID,
		Notes:     msg.Notes,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendCallTimeout)
		defer cancel()
		id, err := client.Create(ctx, draft)
		return createCompleteMsg{id: id, title: draft.Title, err: err}
	}
}

// executeDeleteHabit removes a habit and its completion history.
func (m *App) executeDeleteHabit(id, title string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendCallTimeout)
		defer cancel()
		err := client.Delete(ctx, id)
		return deleteCompleteMsg{id: id, title: title, err: err}
	}
}

// executeSaveNotes persists edited notes for a habit.
func (m *App) executeSaveNotes(id, notes string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendCallTimeout)
		defer cancel()
		err := client.UpdateNotes(ctx, id, notes)
		return notesCompleteMsg{id: id, err: err}
	}
}

// executeSetDone records or clears today's completion for a habit.
func (m *App) executeSetDone(id string, done bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendCallTimeout)
		defer cancel()
		err := client.SetDone(ctx, id, time.Now(), done)
		return doneCompleteMsg{id: id, done: done, err: err}
	}
}

// loadHistory fetches a habit's completion history for the detail pane.
func (m *App) loadHistory(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendCallTimeout)
		defer cancel()
		completions, err := client.Completions(ctx, id)
		return historyLoadedMsg{id: id, completions: completions, err: err}
	}
}

// copyHabitID puts the selected habit's ID on the system clipboard.
func (m *App) copyHabitID() tea.Cmd {
	h, ok := m.currentHabit()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(h.ID); err != nil {
		m.lastError = "clipboard: " + err.Error()
		m.showErrorToast = true
		m.errorToastStart = time.Now()
		return scheduleErrorToastTick()
	}
	m.copyToastVisible = true
	m.copyToastStart = time.Now()
	m.copiedHabitID = h.ID
	return scheduleCopyToastTick()
}
