package theme

import "github.com/charmbracelet/lipgloss"

func adaptive(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

// TokyoNight, the default theme.
var TokyoNight = Palette{
	PrimaryC:             adaptive("#82aaff", "#2e7de9"),
	SecondaryC:           adaptive("#c099ff", "#9854f1"),
	AccentC:              adaptive("#ff966c", "#b15c00"),
	ErrorC:               adaptive("#ff757f", "#f52a65"),
	WarningC:             adaptive("#ff966c", "#b15c00"),
	SuccessC:             adaptive("#c3e88d", "#587539"),
	InfoC:                adaptive("#7dcfff", "#0db9d7"),
	TextC:                adaptive("#c8d3f5", "#3760bf"),
	TextMutedC:           adaptive("#636da6", "#848cb5"),
	TextEmphasizedC:      adaptive("#ffc777", "#8c6c3e"),
	BackgroundC:          adaptive("#222436", "#e1e2e7"),
	BackgroundSecondaryC: adaptive("#2f334d", "#c8c9ce"),
	BackgroundDarkerC:    adaptive("#1e2030", "#d5d6db"),
	BorderNormalC:        adaptive("#3b4261", "#a8aecb"),
	BorderFocusedC:       adaptive("#82aaff", "#2e7de9"),
	BorderDimC:           adaptive("#292e42", "#c8c9ce"),
}

// Catppuccin Mocha (dark) / Latte (light).
var Catppuccin = Palette{
	PrimaryC:             adaptive("#89b4fa", "#1e66f5"),
	SecondaryC:           adaptive("#cba6f7", "#8839ef"),
	AccentC:              adaptive("#fab387", "#fe640b"),
	ErrorC:               adaptive("#f38ba8", "#d20f39"),
	WarningC:             adaptive("#fab387", "#fe640b"),
	SuccessC:             adaptive("#a6e3a1", "#40a02b"),
	InfoC:                adaptive("#89b4fa", "#1e66f5"),
	TextC:                adaptive("#cdd6f4", "#4c4f69"),
	TextMutedC:           adaptive("#6c7086", "#9ca0b0"),
	TextEmphasizedC:      adaptive("#f5e0dc", "#dc8a78"),
	BackgroundC:          adaptive("#1e1e2e", "#eff1f5"),
	BackgroundSecondaryC: adaptive("#313244", "#e6e9ef"),
	BackgroundDarkerC:    adaptive("#181825", "#dce0e8"),
	BorderNormalC:        adaptive("#6c7086", "#9ca0b0"),
	BorderFocusedC:       adaptive("#89b4fa", "#1e66f5"),
	BorderDimC:           adaptive("#45475a", "#ccd0da"),
}

// Dracula.
var Dracula = Palette{
	PrimaryC:             adaptive("#bd93f9", "#7e57c2"),
	SecondaryC:           adaptive("#8be9fd", "#0097a7"),
	AccentC:              adaptive("#f1fa8c", "#f9a825"),
	ErrorC:               adaptive("#ff5555", "#d32f2f"),
	WarningC:             adaptive("#ffb86c", "#ef6c00"),
	SuccessC:             adaptive("#50fa7b", "#388e3c"),
	InfoC:                adaptive("#8be9fd", "#1976d2"),
	TextC:                adaptive("#f8f8f2", "#212121"),
	TextMutedC:           adaptive("#6272a4", "#757575"),
	TextEmphasizedC:      adaptive("#f8f8f2", "#000000"),
	BackgroundC:          adaptive("#282a36", "#ffffff"),
	BackgroundSecondaryC: adaptive("#44475a", "#e0e0e0"),
	BackgroundDarkerC:    adaptive("#1e1f29", "#bdbdbd"),
	BorderNormalC:        adaptive("#6272a4", "#bdbdbd"),
	BorderFocusedC:       adaptive("#bd93f9", "#7e57c2"),
	BorderDimC:           adaptive("#44475a", "#e0e0e0"),
}

// Gruvbox.
var Gruvbox = Palette{
	PrimaryC:             adaptive("#83a598", "#076678"),
	SecondaryC:           adaptive("#d3869b", "#8f3f71"),
	AccentC:              adaptive("#fabd2f", "#b57614"),
	ErrorC:               adaptive("#fb4934", "#9d0006"),
	WarningC:             adaptive("#fe8019", "#af3a03"),
	SuccessC:             adaptive("#b8bb26", "#79740e"),
	InfoC:                adaptive("#83a598", "#076678"),
	TextC:                adaptive("#ebdbb2", "#3c3836"),
	TextMutedC:           adaptive("#a89984", "#7c6f64"),
	TextEmphasizedC:      adaptive("#fabd2f", "#b57614"),
	BackgroundC:          adaptive("#282828", "#fbf1c7"),
	BackgroundSecondaryC: adaptive("#504945", "#ebdbb2"),
	BackgroundDarkerC:    adaptive("#1d2021", "#d5c4a1"),
	BorderNormalC:        adaptive("#504945", "#bdae93"),
	BorderFocusedC:       adaptive("#83a598", "#076678"),
	BorderDimC:           adaptive("#3c3836", "#d5c4a1"),
}

// Nord.
var Nord = Palette{
	PrimaryC:             adaptive("#88c0d0", "#5e81ac"),
	SecondaryC:           adaptive("#81a1c1", "#81a1c1"),
	AccentC:              adaptive("#8fbcbb", "#8fbcbb"),
	ErrorC:               adaptive("#bf616a", "#bf616a"),
	WarningC:             adaptive("#d08770", "#d08770"),
	SuccessC:             adaptive("#a3be8c", "#a3be8c"),
	InfoC:                adaptive("#88c0d0", "#5e81ac"),
	TextC:                adaptive("#eceff4", "#2e3440"),
	TextMutedC:           adaptive("#8b95a7", "#3b4252"),
	TextEmphasizedC:      adaptive("#eceff4", "#000000"),
	BackgroundC:          adaptive("#2e3440", "#eceff4"),
	BackgroundSecondaryC: adaptive("#3b4252", "#e5e9f0"),
	BackgroundDarkerC:    adaptive("#434c5e", "#d8dee9"),
	BorderNormalC:        adaptive("#434c5e", "#4c566a"),
	BorderFocusedC:       adaptive("#88c0d0", "#5e81ac"),
	BorderDimC:           adaptive("#4c566a", "#434c5e"),
}

func init() {
	RegisterTheme("tokyonight", TokyoNight)
	RegisterTheme("catppuccin", Catppuccin)
	RegisterTheme("dracula", Dracula)
	RegisterTheme("gruvbox", Gruvbox)
	RegisterTheme("nord", Nord)
}
