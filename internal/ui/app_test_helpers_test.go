package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/habits"
)

var errTest = errors.New("synthetic failure")

// newTestApp builds an App wired to the mock client, sized and loaded with the
// provided habits.
func newTestApp(t *testing.T, mock *habits.MockClient, list []habits.Habit) *App {
	t.Helper()

	app := NewApp(Config{
		Client:          mock,
		UserID:          "u-test",
		AutoRefresh:     false,
		RefreshInterval: time.Hour,
	})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(refreshCompleteMsg{habits: list, doneToday: map[string]bool{}})
	return app
}

// pressKey sends a single named key ("n", "esc", "tab", "enter", ...) through
// the App.
func pressKey(t *testing.T, app *App, k string) tea.Cmd {
	t.Helper()
	_, cmd := app.Update(keyMsg(k))
	return cmd
}

// typeString feeds each rune of s through the App as key input.
func typeString(t *testing.T, app *App, s string) {
	t.Helper()
	for _, r := range s {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// runCmd executes a command and routes its message back into the App,
// returning any follow-up command. Batch messages are executed in order.
func runCmd(t *testing.T, app *App, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var last tea.Cmd
		for _, c := range batch {
			if next := runCmd(t, app, c); next != nil {
				last = next
			}
		}
		return last
	}
	_, next := app.Update(msg)
	return next
}

// submitCreateForm fills in the open create overlay and presses Enter.
// Days are toggled via the 1-7 hotkeys in the given order.
func submitCreateForm(t *testing.T, app *App, title string, dayHotkeys ...string) tea.Cmd {
	t.Helper()
	if app.createOverlay == nil {
		t.Fatal("create overlay is not open")
	}
	typeString(t, app, title)
	pressKey(t, app, "tab") // move to days zone
	for _, k := range dayHotkeys {
		pressKey(t, app, k)
	}
	return pressKey(t, app, "enter")
}
