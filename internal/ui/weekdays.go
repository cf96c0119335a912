package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cadence/internal/domain"
	"cadence/internal/ui/theme"
)

// Powerline half-circle glyphs used to draw pill-shaped day chips.
const (
	dayPillLeft  = ""
	dayPillRight = ""
)

// WeekdayPicker is the day-of-week selector inside the create overlay. The
// seven pills render in calendar order; the selection remembers the order the
// user toggled days on, which is the order they are stored in.
type WeekdayPicker struct {
	cursor    int
	selection domain.Frequency
}

func NewWeekdayPicker() WeekdayPicker {
	return WeekdayPicker{}
}

// Selected returns the picked days in toggle order.
func (p WeekdayPicker) Selected() domain.Frequency {
	return p.selection
}

func (p *WeekdayPicker) MoveLeft() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *WeekdayPicker) MoveRight() {
	if p.cursor < len(domain.AllWeekdays())-1 {
		p.cursor++
	}
}

// ToggleCursor flips the day under the cursor.
func (p *WeekdayPicker) ToggleCursor() {
	p.selection = p.selection.Toggle(domain.AllWeekdays()[p.cursor])
}

// ToggleDay flips a specific day, moving the cursor to it.
func (p *WeekdayPicker) ToggleDay(day domain.Weekday) {
	for i, d := range domain.AllWeekdays() {
		if d == day {
			p.cursor = i
			break
		}
	}
	p.selection = p.selection.Toggle(day)
}

// Reset clears the selection and returns the cursor to Monday.
func (p *WeekdayPicker) Reset() {
	p.cursor = 0
	p.selection = nil
}

// View renders the seven day pills on the overlay background. The cursor pill
// is only highlighted while the picker has focus.
func (p WeekdayPicker) View(focused bool) string {
	bg := theme.Current().BackgroundSecondary()
	gap := lipgloss.NewStyle().Background(bg).Render(" ")

	var pills []string
	for i, day := range domain.AllWeekdays() {
		selected := p.selection.Contains(day)
		underCursor := focused && i == p.cursor
		pills = append(pills, renderDayPill(day, selected, underCursor, bg))
	}
	return strings.Join(pills, gap)
}

func renderDayPill(day domain.Weekday, selected, underCursor bool, overlayBg lipgloss.AdaptiveColor) string {
	var pillBg, pillFg lipgloss.AdaptiveColor
	switch {
	case selected:
		pillBg = theme.Current().Info()
		pillFg = theme.Current().Background()
	default:
		pillBg = theme.Current().BackgroundDarker()
		pillFg = theme.Current().TextMuted()
	}

	capStyle := lipgloss.NewStyle().Foreground(pillBg).Background(overlayBg)
	bodyStyle := lipgloss.NewStyle().Background(pillBg).Foreground(pillFg)
	if underCursor {
		bodyStyle = bodyStyle.Bold(true).Underline(true)
	}

	return capStyle.Render(dayPillLeft) +
		bodyStyle.Render(string(day)) +
		capStyle.Render(dayPillRight)
}
