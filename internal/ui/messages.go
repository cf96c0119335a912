package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/habits"
)

// tickMsg drives the auto-refresh poll loop.
type tickMsg time.Time

func scheduleTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCompleteMsg carries the result of a background data reload.
type refreshCompleteMsg struct {
	habits    []habits.Habit
	doneToday map[string]bool
	modTime   time.Time
	err       error
}

// createCompleteMsg is the result of a habit create call.
type createCompleteMsg struct {
	id    string
	title string
	err   error
}

// deleteCompleteMsg is the result of a habit delete call.
type deleteCompleteMsg struct {
	id    string
	title string
	err   error
}

// notesCompleteMsg is the result of saving habit notes.
type notesCompleteMsg struct {
	id  string
	err error
}

// doneCompleteMsg is the result of toggling a habit's completion for today.
type doneCompleteMsg struct {
	id   string
	done bool
	err  error
}

// historyLoadedMsg carries a habit's completion history for the detail pane.
type historyLoadedMsg struct {
	id          string
	completions []habits.Completion
	err         error
}

// backendErrorMsg tells an open overlay that its pending call failed so it can
// re-enable its inputs while the error toast is showing.
type backendErrorMsg struct{}

// DismissErrorToastMsg hides the error toast. Sent by overlays on Esc when a
// backend error is displayed.
type DismissErrorToastMsg struct{}

// Toast countdown ticks. Each visible toast keeps a 1s tick alive until it
// expires so the remaining-seconds display stays current.

type errorToastTickMsg struct{}

func scheduleErrorToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return errorToastTickMsg{}
	})
}

type createToastTickMsg struct{}

func scheduleCreateToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return createToastTickMsg{}
	})
}

type deleteToastTickMsg struct{}

func scheduleDeleteToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return deleteToastTickMsg{}
	})
}

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}

type themeToastTickMsg struct{}

func scheduleThemeToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return themeToastTickMsg{}
	})
}

type notesToastTickMsg struct{}

func scheduleNotesToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return notesToastTickMsg{}
	})
}
