package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/bars"
)

// Theme maps bar roles and HUD elements to terminal colours.
type Theme struct {
	Name    string
	Idle    lipgloss.Color
	Compare lipgloss.Color
	Swapped lipgloss.Color
	Sorted  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Idle:    lipgloss.Color("#0099ff"),
		Compare: lipgloss.Color("#ff9900"),
		Swapped: lipgloss.Color("#ff3333"),
		Sorted:  lipgloss.Color("#00ff66"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Accent:  lipgloss.Color("#00ccff"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Idle:    lipgloss.Color("#00aa00"), // green phosphor
		Compare: lipgloss.Color("#88ff88"),
		Swapped: lipgloss.Color("#ffff00"),
		Sorted:  lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Accent:  lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Idle:    lipgloss.Color("#888888"),
		Compare: lipgloss.Color("#ffffff"),
		Swapped: lipgloss.Color("#0088ff"),
		Sorted:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Accent:  lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Idle:    lipgloss.Color("#0077be"),
		Compare: lipgloss.Color("#ffd700"),
		Swapped: lipgloss.Color("#ff4444"),
		Sorted:  lipgloss.Color("#00ff88"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Accent:  lipgloss.Color("#00a8cc"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Idle:    lipgloss.Color("#ff6b6b"),
		Compare: lipgloss.Color("#feca57"),
		Swapped: lipgloss.Color("#ff9ff3"),
		Sorted:  lipgloss.Color("#5fd068"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Accent:  lipgloss.Color("#feca57"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
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

func (t Theme) RoleColor(r bars.Role) lipgloss.Color {
	switch r {
	case bars.Compare:
		return t.Compare
	case bars.Swapped:
		return t.Swapped
	case bars.Sorted:
		return t.Sorted
	default:
		return t.Idle
	}
}
