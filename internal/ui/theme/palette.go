package theme

import "github.com/charmbracelet/lipgloss"

// Palette is a Theme backed by plain color data. The built-in themes are
// declared as Palette literals in themes.go and registered at init time.
type Palette struct {
	PrimaryC             lipgloss.AdaptiveColor
	SecondaryC           lipgloss.AdaptiveColor
	AccentC              lipgloss.AdaptiveColor
	ErrorC               lipgloss.AdaptiveColor
	WarningC             lipgloss.AdaptiveColor
	SuccessC             lipgloss.AdaptiveColor
	InfoC                lipgloss.AdaptiveColor
	TextC                lipgloss.AdaptiveColor
	TextMutedC           lipgloss.AdaptiveColor
	TextEmphasizedC      lipgloss.AdaptiveColor
	BackgroundC          lipgloss.AdaptiveColor
	BackgroundSecondaryC lipgloss.AdaptiveColor
	BackgroundDarkerC    lipgloss.AdaptiveColor
	BorderNormalC        lipgloss.AdaptiveColor
	BorderFocusedC       lipgloss.AdaptiveColor
	BorderDimC           lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor             { return p.PrimaryC }
func (p Palette) Secondary() lipgloss.AdaptiveColor           { return p.SecondaryC }
func (p Palette) Accent() lipgloss.AdaptiveColor              { return p.AccentC }
func (p Palette) Error() lipgloss.AdaptiveColor               { return p.ErrorC }
func (p Palette) Warning() lipgloss.AdaptiveColor             { return p.WarningC }
func (p Palette) Success() lipgloss.AdaptiveColor             { return p.SuccessC }
func (p Palette) Info() lipgloss.AdaptiveColor                { return p.InfoC }
func (p Palette) Text() lipgloss.AdaptiveColor                { return p.TextC }
func (p Palette) TextMuted() lipgloss.AdaptiveColor           { return p.TextMutedC }
func (p Palette) TextEmphasized() lipgloss.AdaptiveColor      { return p.TextEmphasizedC }
func (p Palette) Background() lipgloss.AdaptiveColor          { return p.BackgroundC }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.BackgroundSecondaryC }
func (p Palette) BackgroundDarker() lipgloss.AdaptiveColor    { return p.BackgroundDarkerC }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor        { return p.BorderNormalC }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor       { return p.BorderFocusedC }
func (p Palette) BorderDim() lipgloss.AdaptiveColor           { return p.BorderDimC }
