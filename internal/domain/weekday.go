package domain

import "strings"

// Weekday is the canonical three-letter token for a day of the week.
type Weekday string

const (
	WeekdayUnknown Weekday = ""
	Monday         Weekday = "Mon"
	Tuesday        Weekday = "Tue"
	Wednesday      Weekday = "Wed"
	Thursday       Weekday = "Thu"
	Friday         Weekday = "Fri"
	Saturday       Weekday = "Sat"
	Sunday         Weekday = "Sun"
)

var orderedWeekdays = [...]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var validWeekdays = map[Weekday]struct{}{
	Monday:    {},
	Tuesday:   {},
	Wednesday: {},
	Thursday:  {},
	Friday:    {},
	Saturday:  {},
	Sunday:    {},
}

// AllWeekdays returns the seven weekdays in calendar order, Monday first.
func AllWeekdays() []Weekday {
	return append([]Weekday(nil), orderedWeekdays[:]...)
}

// ParseWeekday normalises and validates an incoming weekday token.
func ParseWeekday(raw string) (Weekday, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return WeekdayUnknown, invalidWeekdayError("blank")
	}
	for day := range validWeekdays {
		if strings.EqualFold(trimmed, string(day)) {
			return day, nil
		}
	}
	return WeekdayUnknown, invalidWeekdayError(raw)
}

// Validate ensures the weekday is one of the seven canonical tokens.
func (d Weekday) Validate() error {
	if _, ok := validWeekdays[d]; !ok {
		return invalidWeekdayError(string(d))
	}
	return nil
}

// String returns the canonical token.
func (d Weekday) String() string {
	return string(d)
}

// Full returns the long English name for display purposes.
func (d Weekday) Full() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	}
	return string(d)
}
