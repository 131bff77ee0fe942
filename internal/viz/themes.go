package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the visualization.
type Theme struct {
	Name    string
	Border  lipgloss.Color
	Title   lipgloss.Color
	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Insert  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Select  lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:    "default",
		Border:  lipgloss.Color("7"),
		Title:   lipgloss.Color("15"),
		Bar:     lipgloss.Color("15"),
		Compare: lipgloss.Color("14"), // light cyan
		Swap:    lipgloss.Color("10"), // light green
		Insert:  lipgloss.Color("11"), // light yellow
		Text:    lipgloss.Color("15"),
		Muted:   lipgloss.Color("8"),
		Select:  lipgloss.Color("8"),
		Error:   lipgloss.Color("9"),
	}

	ThemeNeon = Theme{
		Name:    "neon",
		Border:  lipgloss.Color("#444466"),
		Title:   lipgloss.Color("#00ffff"),
		Bar:     lipgloss.Color("#ff00ff"),
		Compare: lipgloss.Color("#00ffff"),
		Swap:    lipgloss.Color("#00ff88"),
		Insert:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Select:  lipgloss.Color("#1a001a"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Border:  lipgloss.Color("#4488aa"),
		Title:   lipgloss.Color("#e0f0ff"),
		Bar:     lipgloss.Color("#00a8cc"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#00ff88"),
		Insert:  lipgloss.Color("#ffcc00"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Select:  lipgloss.Color("#001a33"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Border:  lipgloss.Color("#8b6b8c"),
		Title:   lipgloss.Color("#feca57"),
		Bar:     lipgloss.Color("#ff6b6b"),
		Compare: lipgloss.Color("#ff9ff3"),
		Swap:    lipgloss.Color("#5fd068"),
		Insert:  lipgloss.Color("#ffc048"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Select:  lipgloss.Color("#2d1b2e"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Border:  lipgloss.Color("#888888"),
		Title:   lipgloss.Color("#ffffff"),
		Bar:     lipgloss.Color("#cccccc"),
		Compare: lipgloss.Color("#ffffff"),
		Swap:    lipgloss.Color("#ffffff"),
		Insert:  lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Select:  lipgloss.Color("#333333"),
		Error:   lipgloss.Color("#ffffff"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDefault,
		ThemeNeon,
		ThemeOcean,
		ThemeSunset,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
