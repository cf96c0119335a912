package habits

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	appErrors "cadence/internal/errors"
)

// testClient creates a store backed by a fresh database under t.TempDir().
func testClient(t *testing.T) Client {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	client, err := NewSQLiteClient(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteClient: %v", err)
	}
	return client
}

func mustCreate(t *testing.T, client Client, draft NewHabit) string {
	t.Helper()
	id, err := client.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Create(%q): %v", draft.Title, err)
	}
	return id
}

func TestSQLiteCreateAndList(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	id := mustCreate(t, client, NewHabit{Title: "Drink water", Frequency: "Mon,Wed", OwnerID: "u1"})
	if !strings.HasPrefix(id, "hb-") {
		t.Fatalf("expected hb- prefixed ID, got %q", id)
	}

	habits, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	got := habits[0]
	if got.Title != "Drink water" || got.Frequency != "Mon,Wed" || got.OwnerID != "u1" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Fatal("expected created_at to be set")
	}
}

func TestSQLiteListOrdersByCreation(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	first := mustCreate(t, client, NewHabit{Title: "Stretch", Frequency: "Mon", OwnerID: "u1"})
	second := mustCreate(t, client, NewHabit{Title: "Read", Frequency: "Tue", OwnerID: "u1"})

	habits, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}
	ids := []string{habits[0].ID, habits[1].ID}
	if !(ids[0] == first && ids[1] == second) && habits[0].CreatedAt == habits[1].CreatedAt {
		// Same-second creations fall back to ID order; both orderings are stable.
		return
	}
	if habits[0].CreatedAt > habits[1].CreatedAt {
		t.Fatalf("expected creation order, got %v", ids)
	}
}

func TestSQLiteCreatePreservesSelectionOrder(t *testing.T) {
	client := testClient(t)

	id := mustCreate(t, client, NewHabit{Title: "Journal", Frequency: "Wed,Mon,Sun", OwnerID: "u1"})

	got, err := client.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Frequency != "Wed,Mon,Sun" {
		t.Fatalf("frequency reordered in storage: %q", got.Frequency)
	}
}

func TestSQLiteCreateRejectsInvalidDrafts(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		draft NewHabit
		code  appErrors.Code
	}{
		{"empty title", NewHabit{Title: "", Frequency: "Mon"}, appErrors.CodeInvalidTitle},
		{"short title", NewHabit{Title: "ab", Frequency: "Mon"}, appErrors.CodeInvalidTitle},
		{"no days", NewHabit{Title: "Stretch", Frequency: ""}, appErrors.CodeInvalidFrequency},
		{"bad token", NewHabit{Title: "Stretch", Frequency: "Mon,Funday"}, appErrors.CodeInvalidWeekday},
		{"no owner", NewHabit{Title: "Stretch", Frequency: "Mon"}, appErrors.CodeInvalidHabitData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := client.Create(ctx, tc.draft); !appErrors.IsCode(err, tc.code) {
				t.Fatalf("expected code %q, got %v", tc.code, err)
			}
		})
	}

	habits, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("invalid drafts must not be stored, found %d", len(habits))
	}
}

func TestSQLiteGetNotFound(t *testing.T) {
	client := testClient(t)

	_, err := client.Get(context.Background(), "hb-missing")
	if !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestSQLiteDelete(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	id := mustCreate(t, client, NewHabit{Title: "Stretch", Frequency: "Mon", OwnerID: "u1"})
	if err := client.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := client.Get(ctx, id); !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("expected habit gone, got %v", err)
	}
	if err := client.Delete(ctx, id); !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("expected not_found on double delete, got %v", err)
	}
}

func TestSQLiteUpdateNotes(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	id := mustCreate(t, client, NewHabit{Title: "Journal", Frequency: "Sun", OwnerID: "u1"})
	if err := client.UpdateNotes(ctx, id, "# Evening\nThree lines minimum."); err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}
	got, err := client.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(got.Notes, "Three lines") {
		t.Fatalf("notes not persisted: %q", got.Notes)
	}
	if err := client.UpdateNotes(ctx, "hb-missing", "x"); !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("expected not_found for unknown id, got %v", err)
	}
}

func TestSQLiteCompletions(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	id := mustCreate(t, client, NewHabit{Title: "Stretch", Frequency: "Mon", OwnerID: "u1"})

	done, err := client.CompletedOn(ctx, day)
	if err != nil {
		t.Fatalf("CompletedOn: %v", err)
	}
	if done[id] {
		t.Fatal("fresh habit should not be done")
	}

	if err := client.SetDone(ctx, id, day, true); err != nil {
		t.Fatalf("SetDone(true): %v", err)
	}
	// Marking done twice must stay a single completion row.
	if err := client.SetDone(ctx, id, day, true); err != nil {
		t.Fatalf("SetDone(true) repeat: %v", err)
	}

	done, err = client.CompletedOn(ctx, day)
	if err != nil {
		t.Fatalf("CompletedOn: %v", err)
	}
	if !done[id] {
		t.Fatal("expected habit marked done")
	}

	if err := client.SetDone(ctx, id, day, false); err != nil {
		t.Fatalf("SetDone(false): %v", err)
	}
	done, err = client.CompletedOn(ctx, day)
	if err != nil {
		t.Fatalf("CompletedOn: %v", err)
	}
	if done[id] {
		t.Fatal("expected completion cleared")
	}
}

func TestSQLiteCompletionsHistory(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	id := mustCreate(t, client, NewHabit{Title: "Stretch", Frequency: "Mon", OwnerID: "u1"})
	other := mustCreate(t, client, NewHabit{Title: "Journal", Frequency: "Sun", OwnerID: "u1"})

	days := []time.Time{
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		if err := client.SetDone(ctx, id, day, true); err != nil {
			t.Fatalf("SetDone: %v", err)
		}
	}
	if err := client.SetDone(ctx, other, days[0], true); err != nil {
		t.Fatalf("SetDone other: %v", err)
	}

	history, err := client.Completions(ctx, id)
	if err != nil {
		t.Fatalf("Completions: %v", err)
	}
	want := []string{"2026-08-28", "2026-08-29", "2026-08-30"}
	if len(history) != len(want) {
		t.Fatalf("expected %d completions, got %d", len(want), len(history))
	}
	for i, comp := range history {
		if comp.HabitID != id {
			t.Fatalf("completion %d belongs to %q", i, comp.HabitID)
		}
		if comp.Day != want[i] {
			t.Fatalf("expected day order %v, got %q at %d", want, comp.Day, i)
		}
	}

	if err := client.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	history, err = client.Completions(ctx, id)
	if err != nil {
		t.Fatalf("Completions after delete: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history after delete, got %v", history)
	}
}

func TestSQLiteDeleteCascadesCompletions(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	id := mustCreate(t, client, NewHabit{Title: "Stretch", Frequency: "Mon", OwnerID: "u1"})
	if err := client.SetDone(ctx, id, day, true); err != nil {
		t.Fatalf("SetDone: %v", err)
	}
	if err := client.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	done, err := client.CompletedOn(ctx, day)
	if err != nil {
		t.Fatalf("CompletedOn: %v", err)
	}
	if len(done) != 0 {
		t.Fatalf("expected completions cascaded away, got %v", done)
	}
}

func TestBuildSQLiteDSN(t *testing.T) {
	dsn := buildSQLiteDSN("/tmp/cadence.db")
	for _, want := range []string{"file:", "mode=rwc", "_journal_mode=WAL", "_busy_timeout=3000"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q missing %q", dsn, want)
		}
	}
}

func TestDayKey(t *testing.T) {
	day := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	if got := DayKey(day); got != "2026-08-30" {
		t.Fatalf("DayKey = %q", got)
	}
}
