package domain

import "strings"

// Frequency is an ordered selection of weekdays. The order is the order the
// days were chosen in, not calendar order, and is preserved through storage.
type Frequency []Weekday

// Contains reports whether the day is part of the selection.
func (f Frequency) Contains(day Weekday) bool {
	for _, d := range f {
		if d == day {
			return true
		}
	}
	return false
}

// Toggle returns a new Frequency with the day's membership flipped. A day not
// in the selection is appended at the tail; a day already present is removed
// with the relative order of the remaining days unchanged.
func (f Frequency) Toggle(day Weekday) Frequency {
	if !f.Contains(day) {
		out := make(Frequency, 0, len(f)+1)
		out = append(out, f...)
		return append(out, day)
	}
	out := make(Frequency, 0, len(f)-1)
	for _, d := range f {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}

// String serialises the selection as comma-joined tokens in selection order,
// e.g. "Mon,Wed". This is the storage wire format.
func (f Frequency) String() string {
	parts := make([]string, len(f))
	for i, d := range f {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

// Clone returns an independent copy of the selection.
func (f Frequency) Clone() Frequency {
	return append(Frequency(nil), f...)
}

// Validate ensures the selection is non-empty, every token is a real weekday,
// and no day appears twice.
func (f Frequency) Validate() error {
	if len(f) == 0 {
		return invalidFrequencyError("at least one day is required")
	}
	seen := make(map[Weekday]struct{}, len(f))
	for _, d := range f {
		if err := d.Validate(); err != nil {
			return err
		}
		if _, dup := seen[d]; dup {
			return invalidFrequencyError("duplicate day: " + string(d))
		}
		seen[d] = struct{}{}
	}
	return nil
}

// ParseFrequency parses the comma-joined wire format back into a Frequency.
// An empty string parses to an empty selection.
func ParseFrequency(raw string) (Frequency, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, ",")
	out := make(Frequency, 0, len(parts))
	for _, part := range parts {
		day, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		if out.Contains(day) {
			return nil, invalidFrequencyError("duplicate day: " + string(day))
		}
		out = append(out, day)
	}
	return out, nil
}
