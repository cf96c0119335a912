package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cadence/internal/domain"
	"cadence/internal/ui/theme"
)

const (
	createOverlayWidth = 52
	createInputWidth   = createOverlayWidth - 8
	createNotesLines   = 4
	createNotesLimit   = 2000
	createTitleLimit   = 80

	// How long an invalid field keeps its error border after a rejected save.
	fieldFlashDuration = 300 * time.Millisecond
)

// CreateFocus identifies the form zone that receives key input.
type CreateFocus int

const (
	FocusTitle CreateFocus = iota
	FocusDays
	FocusNotes
)

// HabitCreatedMsg is sent when the form passes validation and the user saves.
// The App owns the actual backend call.
type HabitCreatedMsg struct {
	Title string
	Days  domain.Frequency
	Notes string
}

// CreateCancelledMsg is sent when the overlay is dismissed without saving.
type CreateCancelledMsg struct{}

type titleFlashClearMsg struct{}
type daysFlashClearMsg struct{}

// CreateOverlay is the modal habit creation form. Every open starts from a
// blank draft; closing the overlay discards whatever was typed.
type CreateOverlay struct {
	titleInput textinput.Model
	days       WeekdayPicker
	notes      textarea.Model

	focus      CreateFocus
	titleError string
	titleFlash bool
	daysError  string
	daysFlash  bool

	// hasBackendError means the last save failed after validation; the form
	// stays open with the draft intact so the user can retry.
	hasBackendError bool
	isCreating      bool
}

func NewCreateOverlay() *CreateOverlay {
	ti := textinput.New()
	ti.Placeholder = "e.g. Drink water"
	ti.CharLimit = createTitleLimit
	ti.Width = createInputWidth
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Optional notes (markdown)"
	ta.CharLimit = createNotesLimit
	ta.SetWidth(createInputWidth)
	ta.SetHeight(createNotesLines)
	ta.ShowLineNumbers = false
	ta.Blur()

	return &CreateOverlay{
		titleInput: ti,
		days:       NewWeekdayPicker(),
		notes:      ta,
	}
}

// Init implements tea.Model.
func (m *CreateOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the create overlay.
func (m *CreateOverlay) Update(msg tea.Msg) (*CreateOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case titleFlashClearMsg:
		m.titleFlash = false
		return m, nil

	case daysFlashClearMsg:
		m.daysFlash = false
		return m, nil

	case backendErrorMsg:
		m.hasBackendError = true
		m.isCreating = false
		return m, nil

	case tea.KeyMsg:
		// A save is in flight; swallow input until it resolves.
		if m.isCreating {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.handleEscape()
		case tea.KeyCtrlS:
			return m.handleSubmit()
		case tea.KeyTab:
			m.setFocus(m.nextFocus())
			return m, nil
		case tea.KeyShiftTab:
			m.setFocus(m.prevFocus())
			return m, nil
		}

		return m.handleZoneKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m *CreateOverlay) handleZoneKey(msg tea.KeyMsg) (*CreateOverlay, tea.Cmd) {
	switch m.focus {
	case FocusTitle:
		if msg.Type == tea.KeyEnter {
			return m.handleSubmit()
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		if m.titleError != "" {
			m.titleError = ""
		}
		return m, cmd

	case FocusDays:
		switch msg.String() {
		case "left", "h":
			m.days.MoveLeft()
		case "right", "l":
			m.days.MoveRight()
		case " ", "x":
			m.days.ToggleCursor()
			m.daysError = ""
		case "enter":
			return m.handleSubmit()
		case "1", "2", "3", "4", "5", "6", "7":
			idx := int(msg.String()[0] - '1')
			m.days.ToggleDay(domain.AllWeekdays()[idx])
			m.daysError = ""
		}
		return m, nil

	case FocusNotes:
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CreateOverlay) updateFocusedInput(msg tea.Msg) (*CreateOverlay, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case FocusNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

// handleEscape dismisses the error toast first if one is showing; a second
// Esc closes the overlay and discards the draft.
func (m *CreateOverlay) handleEscape() tea.Cmd {
	if m.hasBackendError {
		m.hasBackendError = false
		return func() tea.Msg { return DismissErrorToastMsg{} }
	}
	return func() tea.Msg { return CreateCancelledMsg{} }
}

// handleSubmit validates the draft and, if it passes, emits exactly one
// HabitCreatedMsg. Invalid fields flash and the form stays put.
func (m *CreateOverlay) handleSubmit() (*CreateOverlay, tea.Cmd) {
	if m.isCreating {
		return m, nil
	}

	title := m.titleInput.Value()
	if err := domain.ValidateTitle(title); err != nil {
		m.titleError = err.Error()
		m.titleFlash = true
		m.setFocus(FocusTitle)
		return m, titleFlashCmd()
	}

	days := m.days.Selected()
	if len(days) == 0 {
		m.daysError = "pick at least one day"
		m.daysFlash = true
		m.setFocus(FocusDays)
		return m, daysFlashCmd()
	}

	m.isCreating = true
	m.hasBackendError = false
	created := HabitCreatedMsg{
		Title: title,
		Days:  days.Clone(),
		Notes: strings.TrimSpace(m.notes.Value()),
	}
	return m, func() tea.Msg { return created }
}

func titleFlashCmd() tea.Cmd {
	return tea.Tick(fieldFlashDuration, func(time.Time) tea.Msg {
		return titleFlashClearMsg{}
	})
}

func daysFlashCmd() tea.Cmd {
	return tea.Tick(fieldFlashDuration, func(time.Time) tea.Msg {
		return daysFlashClearMsg{}
	})
}

func (m *CreateOverlay) nextFocus() CreateFocus {
	switch m.focus {
	case FocusTitle:
		return FocusDays
	case FocusDays:
		return FocusNotes
	default:
		return FocusTitle
	}
}

func (m *CreateOverlay) prevFocus() CreateFocus {
	switch m.focus {
	case FocusTitle:
		return FocusNotes
	case FocusNotes:
		return FocusDays
	default:
		return FocusTitle
	}
}

func (m *CreateOverlay) setFocus(zone CreateFocus) {
	m.focus = zone
	if zone == FocusTitle {
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
	}
	if zone == FocusNotes {
		m.notes.Focus()
	} else {
		m.notes.Blur()
	}
}

// View renders the create overlay box.
func (m *CreateOverlay) View() string {
	var lines []string

	divider := styleOverlayDivider().Render(strings.Repeat("─", createOverlayWidth-6))

	lines = append(lines, styleOverlayTitle().Render("NEW HABIT"))
	lines = append(lines, divider, "")

	// Title field
	lines = append(lines, styleOverlayLabel().Render("TITLE"))
	titleBox := m.titleFieldStyle().Render(m.titleInput.View())
	lines = append(lines, titleBox)
	if m.titleError != "" {
		lines = append(lines, styleOverlayError().Render("⚠ "+m.titleError))
	}
	lines = append(lines, "")

	// Days field
	lines = append(lines, styleOverlayLabel().Render("DAYS")+m.daysSummary())
	lines = append(lines, m.days.View(m.focus == FocusDays))
	if m.daysError != "" {
		lines = append(lines, styleOverlayError().Render("⚠ "+m.daysError))
	}
	lines = append(lines, "")

	// Notes field
	lines = append(lines, styleOverlayLabel().Render("NOTES"))
	lines = append(lines, m.notesFieldStyle().Render(m.notes.View()))
	lines = append(lines, "")

	lines = append(lines, divider)
	lines = append(lines, m.renderFooter())

	body := strings.Join(lines, "\n")
	box := styleOverlayBox()
	if m.hasBackendError {
		box = box.BorderForeground(theme.Current().Error())
	}
	return box.Render(body)
}

func (m *CreateOverlay) daysSummary() string {
	sel := m.days.Selected()
	if len(sel) == 0 {
		return styleOverlayMuted().Render("  none yet")
	}
	return styleOverlayMuted().Render("  " + sel.String())
}

func (m *CreateOverlay) titleFieldStyle() lipgloss.Style {
	switch {
	case m.titleFlash || m.titleError != "":
		return styleCreateInputError(createInputWidth)
	case m.focus == FocusTitle:
		return styleCreateInputFocused(createInputWidth)
	default:
		return styleCreateInput(createInputWidth)
	}
}

func (m *CreateOverlay) notesFieldStyle() lipgloss.Style {
	if m.focus == FocusNotes {
		return styleCreateInputFocused(createInputWidth)
	}
	return styleCreateInput(createInputWidth)
}

func (m *CreateOverlay) renderFooter() string {
	if m.isCreating {
		return styleOverlayMuted().Render("Saving…")
	}
	hints := []footerHint{
		{"⏎", "Save"},
		{"⇥", "Next field"},
		{"␣", "Toggle day"},
		{"esc", "Cancel"},
	}
	return overlayFooterLine(hints, createOverlayWidth-6)
}
