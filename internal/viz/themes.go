package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the explorer's colour scheme.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeSpectrum = Theme{
		Name:    "spectrum",
		Primary: lipgloss.Color("86"),
		Accent:  lipgloss.Color("205"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("240"),
		Warning: lipgloss.Color("203"),
	}

	ThemeGold = Theme{
		Name:    "gold",
		Primary: lipgloss.Color("#ffd700"),
		Accent:  lipgloss.Color("#ff9f1c"),
		Text:    lipgloss.Color("#fff5e0"),
		Muted:   lipgloss.Color("#8b7b5c"),
		Warning: lipgloss.Color("#ff4757"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
		Warning: lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{ThemeSpectrum, ThemeGold, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
