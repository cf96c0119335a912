package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/ui/theme"
)

const (
	notesOverlayWidth  = 56
	notesTextareaLines = 8
	notesCharLimit     = 2000
	notesTextareaWidth = notesOverlayWidth - 8
)

// NotesSavedMsg is sent when the user saves edited notes.
type NotesSavedMsg struct {
	HabitID string
	Notes   string
}

// NotesCancelledMsg is sent when the notes modal is dismissed without saving.
type NotesCancelledMsg struct{}

// NotesOverlay edits the free-form notes attached to a habit.
type NotesOverlay struct {
	habitID    string
	habitTitle string
	original   string
	textarea   textarea.Model
}

// NewNotesOverlay creates a notes editor pre-filled with the habit's notes.
func NewNotesOverlay(habitID, habitTitle, notes string) *NotesOverlay {
	ta := textarea.New()
	ta.Placeholder = "Write notes in markdown"
	ta.CharLimit = notesCharLimit
	ta.SetWidth(notesTextareaWidth)
	ta.SetHeight(notesTextareaLines)
	ta.ShowLineNumbers = false
	ta.SetValue(notes)
	ta.Focus()

	return &NotesOverlay{
		habitID:    habitID,
		habitTitle: habitTitle,
		original:   notes,
		textarea:   ta,
	}
}

// Init returns the initial command for the notes overlay.
func (m *NotesOverlay) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the notes overlay.
func (m *NotesOverlay) Update(msg tea.Msg) (*NotesOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			// Multi-stage escape: revert unsaved edits first, then cancel.
			if m.textarea.Value() != m.original {
				m.textarea.SetValue(m.original)
				return m, nil
			}
			return m, func() tea.Msg { return NotesCancelledMsg{} }

		case tea.KeyCtrlS:
			saved := NotesSavedMsg{
				HabitID: m.habitID,
				Notes:   strings.TrimRight(m.textarea.Value(), "\n"),
			}
			return m, func() tea.Msg { return saved }
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the notes overlay.
func (m *NotesOverlay) View() string {
	var lines []string

	divider := styleOverlayDivider().Render(strings.Repeat("─", notesOverlayWidth-6))

	lines = append(lines, styleOverlayTitle().Render("EDIT NOTES"))
	lines = append(lines, divider, "")

	context := styleID().Background(theme.Current().BackgroundSecondary()).Render(m.habitID) +
		styleOverlayText().Render("  "+truncateTitle(m.habitTitle, 38))
	lines = append(lines, context, "")

	lines = append(lines, styleCreateInputFocused(notesTextareaWidth).Render(m.textarea.View()))

	count := len(m.textarea.Value())
	countStyle := styleOverlayMuted()
	if count > notesCharLimit-100 {
		countStyle = styleOverlayError()
	}
	lines = append(lines, countStyle.Render(fmt.Sprintf("  %d/%d", count, notesCharLimit)))

	lines = append(lines, "", divider)
	lines = append(lines, overlayFooterLine([]footerHint{
		{"^S", "Save"},
		{"esc", "Cancel"},
	}, notesOverlayWidth-6))

	return styleOverlayBox().Render(strings.Join(lines, "\n"))
}
