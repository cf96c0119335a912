// Package theme provides a semantic color system for the Cadence UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the 16 semantic colors the UI draws with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (focused borders, header bg)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (field labels)
	Accent() lipgloss.AdaptiveColor    // Highlights (IDs, titles)

	// Status colors
	Error() lipgloss.AdaptiveColor   // Errors, destructive actions
	Warning() lipgloss.AdaptiveColor // Warnings, duplicate flashes
	Success() lipgloss.AdaptiveColor // Success, checked-off habits
	Info() lipgloss.AdaptiveColor    // Informational highlights

	// Text colors
	Text() lipgloss.AdaptiveColor           // Primary text
	TextMuted() lipgloss.AdaptiveColor      // De-emphasized text
	TextEmphasized() lipgloss.AdaptiveColor // Bold/important text

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Selected rows, elevated surfaces
	BackgroundDarker() lipgloss.AdaptiveColor    // Pills, badges

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor  // Default borders
	BorderFocused() lipgloss.AdaptiveColor // Active/focused borders
	BorderDim() lipgloss.AdaptiveColor     // Subtle borders
}
