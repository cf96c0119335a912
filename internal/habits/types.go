package habits

// Habit is the stored habit record. Frequency carries the comma-joined
// weekday tokens in the order the user selected them, e.g. "Mon,Wed".
type Habit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	OwnerID   string `json:"owner_id"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

// NewHabit carries the fields required to create a habit. Frequency is
// already serialised to the wire format by the caller.
type NewHabit struct {
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	OwnerID   string `json:"owner_id"`
	Notes     string `json:"notes,omitempty"`
}

// Completion records that a habit was checked off on a calendar day.
// Day uses the YYYY-MM-DD format.
type Completion struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"`
}
