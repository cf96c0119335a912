package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Toast renderers return "" when their toast is hidden; the View anchors the
// first non-empty one bottom-right.

func (m *App) renderErrorToast() string {
	if !m.showErrorToast || m.lastError == "" {
		return ""
	}
	remaining := toastRemaining(m.errorToastStart, errorToastDuration)

	titleLine := "⚠ Error"
	errLine := extractShortError(m.lastError, 60)
	countdown := fmt.Sprintf("[%ds]", remaining)

	toastWidth := 40
	if w := lipgloss.Width(errLine); w > toastWidth {
		toastWidth = w
	}

	content := titleLine + "\n" + errLine + "\n" + rightAlign(countdown, toastWidth)
	return styleErrorToast().Render(content)
}

func (m *App) renderCreateToast() string {
	if !m.createToastVisible {
		return ""
	}
	remaining := toastRemaining(m.createToastStart, createToastDuration)

	id := m.createToastHabitID
	if id == "" {
		id = "..."
	}
	heroLine := " ✓ " + styleStatsDim().Render("Created") + " " + styleID().Render(id)

	title := truncateTitle(m.createToastTitle, 40)
	titlePart := " " + styleSuccessText().Render(title)
	countdown := styleStatsDim().Render(fmt.Sprintf("[%ds]", remaining))

	content := heroLine + "\n" + padBetween(titlePart, countdown, lipgloss.Width(heroLine))
	return styleSuccessToast().Render(content)
}

func (m *App) renderDeleteToast() string {
	if !m.deleteToastVisible || m.deleteToastHabitID == "" {
		return ""
	}
	remaining := toastRemaining(m.deleteToastStart, deleteToastDuration)

	heroLine := " ✓ " + styleStatsDim().Render("Deleted") + " " + styleID().Render(m.deleteToastHabitID)
	countdown := styleStatsDim().Render(fmt.Sprintf("[%ds]", remaining))

	content := heroLine + "\n" + padBetween("", countdown, lipgloss.Width(heroLine))
	return styleSuccessToast().Render(content)
}

func (m *App) renderCopyToast() string {
	if !m.copyToastVisible || m.copiedHabitID == "" {
		return ""
	}
	remaining := toastRemaining(m.copyToastStart, copyToastDuration)

	msgLine := fmt.Sprintf("Copied '%s' to clipboard.", m.copiedHabitID)
	countdown := fmt.Sprintf("[%ds]", remaining)

	toastWidth := lipgloss.Width(msgLine)
	if toastWidth < 28 {
		toastWidth = 28
	}

	content := msgLine + "\n" + rightAlign(countdown, toastWidth)
	return styleSuccessToast().Render(content)
}

func (m *App) renderNotesToast() string {
	if !m.notesToastVisible || m.notesToastHabitID == "" {
		return ""
	}
	remaining := toastRemaining(m.notesToastStart, notesToastDuration)

	heroLine := " ✓ " + styleStatsDim().Render("Notes saved")
	idPart := " " + styleID().Render(m.notesToastHabitID)
	countdown := styleStatsDim().Render(fmt.Sprintf("[%ds]", remaining))

	content := heroLine + "\n" + padBetween(idPart, countdown, lipgloss.Width(heroLine))
	return styleSuccessToast().Render(content)
}

func (m *App) renderThemeToast() string {
	if !m.themeToastVisible || m.themeToastName == "" {
		return ""
	}
	remaining := toastRemaining(m.themeToastStart, themeToastDuration)

	name := strings.ToUpper(m.themeToastName[:1]) + m.themeToastName[1:]
	heroLine := " 🎨 " + styleStatsDim().Render("Theme:") + " " + styleID().Render(name)
	countdown := styleStatsDim().Render(fmt.Sprintf("[%ds]", remaining))

	content := heroLine + "\n" + padBetween("", countdown, lipgloss.Width(heroLine))
	return styleSuccessToast().Render(content)
}

// activeToast returns the highest-priority visible toast, if any.
func (m *App) activeToast() string {
	for _, render := range []func() string{
		m.renderErrorToast,
		m.renderCreateToast,
		m.renderDeleteToast,
		m.renderNotesToast,
		m.renderCopyToast,
		m.renderThemeToast,
	} {
		if toast := render(); toast != "" {
			return toast
		}
	}
	return ""
}

func toastRemaining(start time.Time, duration time.Duration) int {
	remaining := int(duration.Seconds()) - int(time.Since(start).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// rightAlign pads the text so it ends at the given width.
func rightAlign(text string, width int) string {
	gap := width - lipgloss.Width(text)
	if gap < 0 {
		gap = 0
	}
	return strings.Repeat(" ", gap) + text
}

// padBetween spaces left and right apart to at least targetWidth.
func padBetween(left, right string, targetWidth int) string {
	if targetWidth < 20 {
		targetWidth = 20
	}
	gap := targetWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
