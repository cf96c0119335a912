package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"cadence/internal/habits"
)

func init() {
	// Deterministic color output regardless of the test terminal.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func plainView(app *App) string {
	return stripANSI(app.View())
}

func TestViewBeforeFirstSize(t *testing.T) {
	app := NewApp(Config{Client: habits.NewMockClient()})
	if got := app.View(); got != "Initializing..." {
		t.Errorf("View = %q before sizing", got)
	}
}

func TestViewShowsHeaderAndHabits(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), []habits.Habit{
		{ID: "hb-aaa", Title: "Drink water", Frequency: "Mon,Wed"},
		{ID: "hb-bbb", Title: "Stretch", Frequency: "Fri"},
	})

	view := plainView(app)

	if !strings.Contains(view, "CADENCE") {
		t.Error("header missing from view")
	}
	if !strings.Contains(view, "Habits: 2") {
		t.Error("habit count missing from view")
	}
	if !strings.Contains(view, "Drink water") || !strings.Contains(view, "Stretch") {
		t.Error("habit titles missing from view")
	}
}

func TestViewEmptyState(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)

	if !strings.Contains(plainView(app), "No habits yet") {
		t.Error("expected the empty-state hint")
	}
}

func TestViewShowsCreateOverlay(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	pressKey(t, app, "n")

	view := plainView(app)
	if !strings.Contains(view, "NEW HABIT") {
		t.Error("create overlay missing from view")
	}
	if !strings.Contains(view, "TITLE") || !strings.Contains(view, "DAYS") {
		t.Error("form fields missing from overlay")
	}
	if !strings.Contains(view, "Mon") || !strings.Contains(view, "Sun") {
		t.Error("day pills missing from overlay")
	}
}

func TestViewShowsValidationError(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	pressKey(t, app, "n")
	pressKey(t, app, "enter")

	if !strings.Contains(plainView(app), "title is required") {
		t.Error("title error missing from overlay")
	}
}

func TestViewShowsDeleteOverlay(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), []habits.Habit{
		{ID: "hb-aaa", Title: "Stretch", Frequency: "Mon"},
	})
	pressKey(t, app, "d")

	view := plainView(app)
	if !strings.Contains(view, "Delete this habit?") {
		t.Error("delete prompt missing from view")
	}
	if !strings.Contains(view, "hb-aaa") {
		t.Error("habit ID missing from delete overlay")
	}
}

func TestViewShowsHelpOverlay(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	pressKey(t, app, "?")

	view := plainView(app)
	if !strings.Contains(view, "CADENCE HELP") {
		t.Error("help overlay missing from view")
	}
	if !strings.Contains(view, "New habit") {
		t.Error("keybinding help missing")
	}
}

func TestViewShowsErrorToast(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	app.Update(createCompleteMsg{err: errTest})

	view := plainView(app)
	if !strings.Contains(view, "Error") {
		t.Error("error toast missing from view")
	}
	if !strings.Contains(view, "synthetic failure") {
		t.Error("error text missing from toast")
	}
}

func TestViewShowsSuccessToast(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), nil)
	app.Update(createCompleteMsg{id: "hb-new", title: "Journal"})

	view := plainView(app)
	if !strings.Contains(view, "Created") || !strings.Contains(view, "hb-new") {
		t.Error("create toast missing from view")
	}
}

func TestViewFilterBar(t *testing.T) {
	app := newTestApp(t, habits.NewMockClient(), []habits.Habit{
		{ID: "hb-aaa", Title: "Drink water", Frequency: "Mon"},
		{ID: "hb-bbb", Title: "Stretch", Frequency: "Fri"},
	})

	pressKey(t, app, "/")
	typeString(t, app, "drink")
	pressKey(t, app, "enter")

	view := plainView(app)
	if !strings.Contains(view, "Filter: drink") {
		t.Error("filter indicator missing from header")
	}
	if !strings.Contains(view, "Drink water") {
		t.Error("matching habit missing")
	}
	if strings.Contains(view, "Stretch") {
		t.Error("non-matching habit still shown")
	}
}
