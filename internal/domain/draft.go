package domain

// MinTitleLength is the shortest title the form accepts.
const MinTitleLength = 3

// Draft holds the in-progress state of the habit creation form.
//
// Business rules enforced:
//   - The title must be non-empty and at least MinTitleLength characters.
//     The length check runs on the raw input; surrounding whitespace counts.
//   - The frequency must name at least one weekday, each at most once.
type Draft struct {
	Title     string
	Frequency Frequency
}

// ValidateTitle checks the title rule in isolation so the form can flag the
// field without touching the rest of the draft.
func ValidateTitle(title string) error {
	if title == "" {
		return invalidTitleError("title is required")
	}
	if len([]rune(title)) < MinTitleLength {
		return invalidTitleError("title must be at least 3 characters")
	}
	return nil
}

// Validate checks the whole draft. The title rule is reported before the
// frequency rule when both fail.
func (d Draft) Validate() error {
	if err := ValidateTitle(d.Title); err != nil {
		return err
	}
	return d.Frequency.Validate()
}
