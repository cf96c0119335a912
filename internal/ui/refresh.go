package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/debug"
	"cadence/internal/habits"
)

// latestModTime returns the newest modification time across the database file
// and its WAL sidecars. SQLite in WAL mode often touches only the -wal file,
// so checking the main file alone misses writes from other processes.
func latestModTime(dbPath string) time.Time {
	var latest time.Time
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if mt := info.ModTime(); mt.After(latest) {
			latest = mt
		}
	}
	return latest
}

// dbChangedOnDisk reports whether another process has written the database
// since the last refresh.
func (m *App) dbChangedOnDisk() bool {
	if m.dbPath == "" {
		return false
	}
	mt := latestModTime(m.dbPath)
	return !mt.IsZero() && mt.After(m.lastDBModTime)
}

// forceRefresh starts a reload regardless of on-disk state.
func (m *App) forceRefresh() tea.Cmd {
	if m.refreshInFlight {
		return nil
	}
	m.refreshInFlight = true
	return refreshDataCmd(m.client, m.dbPath)
}

// refreshDataCmd loads the habit list plus today's completions off the UI
// goroutine and reports back with a single message.
func refreshDataCmd(client habits.Client, dbPath string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*backendCallTimeout)
		defer cancel()

		list, err := client.List(ctx)
		if err != nil {
			return refreshCompleteMsg{err: err}
		}
		done, err := client.CompletedOn(ctx, time.Now())
		if err != nil {
			return refreshCompleteMsg{err: err}
		}
		return refreshCompleteMsg{
			habits:    list,
			doneToday: done,
			modTime:   latestModTime(dbPath),
		}
	}
}

// applyRefresh installs freshly loaded data, keeping the current selection
// where possible.
func (m *App) applyRefresh(msg refreshCompleteMsg) {
	m.refreshInFlight = false

	if msg.err != nil {
		debug.Logf("refresh failed: %v", msg.err)
		m.lastError = msg.err.Error()
		return
	}

	var selectedID string
	if h, ok := m.currentHabit(); ok {
		selectedID = h.ID
	}

	added := len(msg.habits) - len(m.habits)
	m.habits = msg.habits
	m.doneToday = msg.doneToday
	if m.doneToday == nil {
		m.doneToday = map[string]bool{}
	}
	if !msg.modTime.IsZero() {
		m.lastDBModTime = msg.modTime
	}
	m.lastRefreshTime = time.Now()
	m.lastError = ""
	m.ready = true

	switch {
	case added > 0:
		m.lastRefreshStats = fmt.Sprintf("+%d", added)
	case added < 0:
		m.lastRefreshStats = fmt.Sprintf("%d", added)
	default:
		m.lastRefreshStats = ""
	}

	m.recalcVisible()
	if selectedID != "" {
		m.selectHabitByID(selectedID)
	}
	if m.showDetails {
		m.syncDetailViewport()
	}
}
