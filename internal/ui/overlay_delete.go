package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cadence/internal/ui/theme"
)

const deleteOverlayWidth = 44

// DeleteOverlay is a confirmation modal for deleting a habit.
type DeleteOverlay struct {
	habitID    string
	habitTitle string
}

// DeleteConfirmedMsg is sent when deletion is confirmed.
type DeleteConfirmedMsg struct {
	HabitID string
	Title   string
}

// DeleteCancelledMsg is sent when the overlay is dismissed without deletion.
type DeleteCancelledMsg struct{}

// NewDeleteOverlay creates a new delete confirmation overlay.
func NewDeleteOverlay(habitID, habitTitle string) *DeleteOverlay {
	return &DeleteOverlay{
		habitID:    habitID,
		habitTitle: habitTitle,
	}
}

// Init implements tea.Model.
func (m *DeleteOverlay) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DeleteOverlay) Update(msg tea.Msg) (*DeleteOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("d"))):
			confirmed := DeleteConfirmedMsg{HabitID: m.habitID, Title: m.habitTitle}
			return m, func() tea.Msg { return confirmed }
		case key.Matches(msg, key.NewBinding(key.WithKeys("c", "esc"))):
			return m, func() tea.Msg { return DeleteCancelledMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *DeleteOverlay) View() string {
	return styleOverlayBox().
		BorderForeground(theme.Current().Error()).
		Render(strings.Join(m.renderLines(), "\n"))
}

func (m *DeleteOverlay) renderLines() []string {
	var lines []string

	overlayBg := theme.Current().BackgroundSecondary()
	divider := styleOverlayDivider().Render(strings.Repeat("─", deleteOverlayWidth))

	titleStyle := lipgloss.NewStyle().
		Background(overlayBg).
		Foreground(theme.Current().Error()).
		Bold(true)

	body := styleOverlayText()
	warning := lipgloss.NewStyle().
		Background(overlayBg).
		Foreground(theme.Current().Warning())
	dangerIcon := lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true).Render("✖")

	lines = append(lines, titleStyle.Render("Delete"))
	lines = append(lines, divider, "")
	lines = append(lines, dangerIcon+" "+body.Bold(true).Render("Delete this habit?"))
	lines = append(lines, "")

	habitTitle := truncateTitle(m.habitTitle, 34)
	habitLine := "  " + styleID().Background(overlayBg).Render(m.habitID) + body.Render("  "+habitTitle)
	lines = append(lines, habitLine)
	lines = append(lines, "")
	lines = append(lines, warning.Render("This also removes its completion history."))

	lines = append(lines, "", divider)
	lines = append(lines, overlayFooterLine([]footerHint{
		{"d", "Delete"},
		{"c/esc", "Cancel"},
	}, deleteOverlayWidth))

	return lines
}
