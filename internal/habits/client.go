package habits

import (
	"context"
	"time"
)

// Client defines the operations the UI needs from a habit store.
type Client interface {
	List(ctx context.Context) ([]Habit, error)
	Get(ctx context.Context, id string) (Habit, error)
	Create(ctx context.Context, draft NewHabit) (string, error)
	UpdateNotes(ctx context.Context, id, notes string) error
	Delete(ctx context.Context, id string) error
	SetDone(ctx context.Context, id string, day time.Time, done bool) error
	CompletedOn(ctx context.Context, day time.Time) (map[string]bool, error)
	Completions(ctx context.Context, habitID string) ([]Completion, error)
}

// DayKey formats a calendar day the way the store indexes completions.
func DayKey(day time.Time) string {
	return day.Format("2006-01-02")
}
