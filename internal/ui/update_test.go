package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/habits"
	"cadence/internal/ui/theme"
)

func threeHabits() []habits.Habit {
	return []habits.Habit{
		{ID: "hb-a", Title: "One", Frequency: "Mon"},
		{ID: "hb-b", Title: "Two", Frequency: "Tue"},
		{ID: "hb-c", Title: "Three", Frequency: "Wed"},
	}
}

func TestNavigation(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), threeHabits())

	pressKey(t, app, "down")
	pressKey(t, app, "down")
	if h, _ := app.currentHabit(); h.ID != "hb-c" {
		t.Errorf("selected = %s, expected hb-c", h.ID)
	}

	// Cursor stops at the end.
	pressKey(t, app, "down")
	if h, _ := app.currentHabit(); h.ID != "hb-c" {
		t.Errorf("selected = %s after extra down, expected hb-c", h.ID)
	}

	pressKey(t, app, "up")
	if h, _ := app.currentHabit(); h.ID != "hb-b" {
		t.Errorf("selected = %s, expected hb-b", h.ID)
	}

	pressKey(t, app, "G")
	if h, _ := app.currentHabit(); h.ID != "hb-c" {
		t.Errorf("selected = %s after G, expected hb-c", h.ID)
	}
	pressKey(t, app, "g")
	if h, _ := app.currentHabit(); h.ID != "hb-a" {
		t.Errorf("selected = %s after g, expected hb-a", h.ID)
	}
}

func TestDetailToggleAndFocus(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), threeHabits())

	pressKey(t, app, "enter")
	if !app.showDetails {
		t.Fatal("details not shown after Enter")
	}
	if app.focus != FocusDetail {
		t.Errorf("focus = %v, expected FocusDetail", app.focus)
	}

	pressKey(t, app, "tab")
	if app.focus != FocusList {
		t.Errorf("focus = %v after Tab, expected FocusList", app.focus)
	}

	pressKey(t, app, "enter")
	if app.showDetails {
		t.Error("details still shown after second Enter")
	}
}

func TestDetailShowsCompletionHistory(t *testing.T) {
	mock := habits.NewMockClient()
	mock.CompletionsFn = func(_ context.Context, id string) ([]habits.Completion, error) {
		return []habits.Completion{
			{HabitID: id, Day: "2026-08-28"},
			{HabitID: id, Day: "2026-08-30"},
		}, nil
	}
	app := newTestApp(t, mock, threeHabits())

	cmd := pressKey(t, app, "enter")
	if cmd == nil {
		t.Fatal("opening details did not request history")
	}
	runCmd(t, app, cmd)

	if mock.CompletionsCallCount != 1 {
		t.Fatalf("Completions called %d times, expected 1", mock.CompletionsCallCount)
	}
	if got := mock.CompletionsCallArgs[0]; got != "hb-a" {
		t.Errorf("history requested for %q, expected hb-a", got)
	}
	if got := len(app.history["hb-a"]); got != 2 {
		t.Fatalf("history entries = %d, expected 2", got)
	}

	view := stripANSI(app.renderDetail("hb-a"))
	if !strings.Contains(view, "2 completions, last on 2026-08-30") {
		t.Errorf("detail pane missing the history line:\n%s", view)
	}

	// Moving the selection while details are open loads the next habit's
	// history.
	app.focus = FocusList
	cmd = pressKey(t, app, "down")
	runCmd(t, app, cmd)
	if mock.CompletionsCallCount != 2 {
		t.Fatalf("Completions called %d times after moving, expected 2", mock.CompletionsCallCount)
	}
	if got := mock.CompletionsCallArgs[1]; got != "hb-b" {
		t.Errorf("history requested for %q after moving, expected hb-b", got)
	}
}

func TestDoneToggleReloadsHistory(t *testing.T) {
	mock := habits.NewMockClient()
	app := newTestApp(t, mock, threeHabits())

	runCmd(t, app, pressKey(t, app, "enter")) // open details, initial load
	app.focus = FocusList
	reload := runCmd(t, app, pressKey(t, app, "space"))
	runCmd(t, app, reload)

	if mock.SetDoneCallCount != 1 {
		t.Fatalf("SetDone called %d times, expected 1", mock.SetDoneCallCount)
	}
	if !app.doneToday["hb-a"] {
		t.Error("habit not marked done after toggle")
	}
	if mock.CompletionsCallCount != 2 {
		t.Errorf("Completions called %d times, expected a reload after the toggle", mock.CompletionsCallCount)
	}
}

func TestFilterNarrowsList(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), threeHabits())

	pressKey(t, app, "/")
	typeString(t, app, "two")
	pressKey(t, app, "enter")

	if len(app.visible) != 1 {
		t.Fatalf("visible = %d habits, expected 1", len(app.visible))
	}
	if h, _ := app.currentHabit(); h.ID != "hb-b" {
		t.Errorf("selected = %s, expected hb-b", h.ID)
	}

	// Esc clears the committed filter.
	pressKey(t, app, "esc")
	if len(app.visible) != 3 {
		t.Errorf("visible = %d after clearing the filter, expected 3", len(app.visible))
	}
}

func TestFilterEscWhileTypingCancels(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), threeHabits())

	pressKey(t, app, "/")
	typeString(t, app, "xyz")
	pressKey(t, app, "esc")

	if app.filtering {
		t.Error("still in filter mode after Esc")
	}
	if app.filterText != "" {
		t.Errorf("filterText = %q, expected empty", app.filterText)
	}
	if len(app.visible) != 3 {
		t.Errorf("visible = %d, expected 3", len(app.visible))
	}
}

func TestThemeCycleShowsToast(t *testing.T) {
	defer theme.SetTheme("tokyonight")

	app := newTestApp(t, habits.NewMockClient(), nil)
	before := theme.CurrentName()

	pressKey(t, app, "t")

	if theme.CurrentName() == before {
		t.Error("theme did not change")
	}
	if !app.themeToastVisible {
		t.Error("expected the theme toast")
	}
	if app.themeToastName != theme.CurrentName() {
		t.Errorf("toast name = %q, expected %q", app.themeToastName, theme.CurrentName())
	}
}

func TestHelpToggle(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)

	pressKey(t, app, "?")
	if !app.showHelp {
		t.Fatal("help not shown")
	}

	// Other keys are inert while help is open.
	pressKey(t, app, "n")
	if app.createOverlay != nil {
		t.Error("create overlay opened from inside help")
	}

	pressKey(t, app, "esc")
	if app.showHelp {
		t.Error("help still shown after Esc")
	}
}

func TestQuitKey(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)

	cmd := pressKey(t, app, "q")
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd produced %T, expected tea.QuitMsg", cmd())
	}
}

func TestEscapeDismissesErrorToastFirst(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), threeHabits())
	pressKey(t, app, "enter") // open details
	app.Update(createCompleteMsg{err: errTest})

	pressKey(t, app, "esc")
	if app.showErrorToast {
		t.Error("error toast still visible after Esc")
	}
	if !app.showDetails {
		t.Error("details closed by the same Esc that dismissed the toast")
	}

	pressKey(t, app, "esc")
	if app.showDetails {
		t.Error("details still shown after second Esc")
	}
}

func TestToastExpiry(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	app.Update(createCompleteMsg{id: "hb-z", title: "Nap"})

	if !app.createToastVisible {
		t.Fatal("expected the create toast")
	}

	// Simulate the toast having been on screen past its lifetime.
	app.createToastStart = time.Now().Add(-createToastDuration - time.Second)
	_, cmd := app.Update(createToastTickMsg{})

	if app.createToastVisible {
		t.Error("toast still visible after expiry")
	}
	if cmd != nil {
		t.Error("expired toast rescheduled its tick")
	}
}

func TestAutoRefreshTick(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	app.autoRefresh = true

	_, cmd := app.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not reschedule")
	}
	// No database configured, so no refresh was started.
	if app.refreshInFlight {
		t.Error("refresh started with no database changes")
	}
}
