package habits

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("habits.MockClient: method not implemented")

// MockClient is a test double for the habit store interface.
type MockClient struct {
	ListFn        func(context.Context) ([]Habit, error)
	GetFn         func(context.Context, string) (Habit, error)
	CreateFn      func(context.Context, NewHabit) (string, error)
	UpdateNotesFn func(context.Context, string, string) error
	DeleteFn      func(context.Context, string) error
	SetDoneFn     func(context.Context, string, time.Time, bool) error
	CompletedOnFn func(context.Context, time.Time) (map[string]bool, error)
	CompletionsFn func(context.Context, string) ([]Completion, error)

	mu                   sync.Mutex
	ListCallCount        int
	GetCallCount         int
	CreateCallCount      int
	UpdateNotesCallCount int
	DeleteCallCount      int
	SetDoneCallCount     int
	CompletedOnCallCount int
	CompletionsCallCount int
	GetCallArgs          []string
	CreateCallArgs       []NewHabit
	UpdateNotesCallArgs  [][]string // [id, notes]
	DeleteCallArgs       []string
	SetDoneCallArgs      []SetDoneCallArg
	CompletionsCallArgs  []string
}

// SetDoneCallArg captures arguments passed to SetDone.
type SetDoneCallArg struct {
	ID   string
	Day  string
	Done bool
}

// NewMockClient returns a MockClient with zeroed handlers.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// List invokes the configured stub or returns an empty list.
func (m *MockClient) List(ctx context.Context) ([]Habit, error) {
	m.mu.Lock()
	m.ListCallCount++
	m.mu.Unlock()

	if m.ListFn == nil {
		return []Habit{}, nil // Default to empty store for tests
	}
	return m.ListFn(ctx)
}

// Get invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Get(ctx context.Context, id string) (Habit, error) {
	m.mu.Lock()
	m.GetCallCount++
	m.GetCallArgs = append(m.GetCallArgs, id)
	m.mu.Unlock()

	if m.GetFn == nil {
		return Habit{}, ErrMockNotImplemented
	}
	return m.GetFn(ctx, id)
}

// Create invokes the configured stub or returns a mock habit ID.
func (m *MockClient) Create(ctx context.Context, draft NewHabit) (string, error) {
	m.mu.Lock()
	m.CreateCallCount++
	m.CreateCallArgs = append(m.CreateCallArgs, draft)
	m.mu.Unlock()

	if m.CreateFn == nil {
		return "hb-mock", nil // Default to returning mock ID
	}
	return m.CreateFn(ctx, draft)
}

// UpdateNotes invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) UpdateNotes(ctx context.Context, id, notes string) error {
	m.mu.Lock()
	m.UpdateNotesCallCount++
	m.UpdateNotesCallArgs = append(m.UpdateNotesCallArgs, []string{id, notes})
	m.mu.Unlock()

	if m.UpdateNotesFn == nil {
		return nil // Default to no-op for tests
	}
	return m.UpdateNotesFn(ctx, id, notes)
}

// Delete invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteCallCount++
	m.DeleteCallArgs = append(m.DeleteCallArgs, id)
	m.mu.Unlock()

	if m.DeleteFn == nil {
		return nil // Default to no-op for tests
	}
	return m.DeleteFn(ctx, id)
}

// SetDone invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) SetDone(ctx context.Context, id string, day time.Time, done bool) error {
	m.mu.Lock()
	m.SetDoneCallCount++
	m.SetDoneCallArgs = append(m.SetDoneCallArgs, SetDoneCallArg{ID: id, Day: DayKey(day), Done: done})
	m.mu.Unlock()

	if m.SetDoneFn == nil {
		return nil // Default to no-op for tests
	}
	return m.SetDoneFn(ctx, id, day, done)
}

// CompletedOn invokes the configured stub or returns an empty set.
func (m *MockClient) CompletedOn(ctx context.Context, day time.Time) (map[string]bool, error) {
	m.mu.Lock()
	m.CompletedOnCallCount++
	m.mu.Unlock()

	if m.CompletedOnFn == nil {
		return map[string]bool{}, nil // Default to nothing done for tests
	}
	return m.CompletedOnFn(ctx, day)
}

// Completions invokes the configured stub or returns an empty history.
func (m *MockClient) Completions(ctx context.Context, habitID string) ([]Completion, error) {
	m.mu.Lock()
	m.CompletionsCallCount++
	m.CompletionsCallArgs = append(m.CompletionsCallArgs, habitID)
	m.mu.Unlock()

	if m.CompletionsFn == nil {
		return []Completion{}, nil // Default to no history for tests
	}
	return m.CompletionsFn(ctx, habitID)
}
