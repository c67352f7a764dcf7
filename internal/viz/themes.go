package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortvis/internal/sorting"
)

// Theme defines the color scheme for bars and chrome.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Bar       lipgloss.Color
	Roles     map[sorting.Role]lipgloss.Color
}

// RoleColor returns the bar color for a highlight role, or the plain bar color.
func (t Theme) RoleColor(role sorting.Role) lipgloss.Color {
	if c, ok := t.Roles[role]; ok {
		return c
	}
	return t.Bar
}

// BarColor returns the color for the bar at index i of step.
func (t Theme) BarColor(step sorting.Step, i int) lipgloss.Color {
	if role, ok := step.Role(i); ok {
		return t.RoleColor(role)
	}
	return t.Bar
}

func roleColors(compared, pivot, boundary, left, right string) map[sorting.Role]lipgloss.Color {
	return map[sorting.Role]lipgloss.Color{
		sorting.RoleCompared:       lipgloss.Color(compared),
		sorting.RoleActive:         lipgloss.Color(compared),
		sorting.RoleRoot:           lipgloss.Color(compared),
		sorting.RoleSettled:        lipgloss.Color(compared),
		sorting.RoleSortedBoundary: lipgloss.Color(boundary),
		sorting.RolePivot:          lipgloss.Color(pivot),
		sorting.RoleActiveLeft:     lipgloss.Color(left),
		sorting.RoleActiveRight:    lipgloss.Color(right),
	}
}

var (
	// ThemeClassic uses blue bars with red, orange and yellow highlights.
	ThemeClassic = Theme{
		Name:      "classic",
		Primary:   lipgloss.Color("#1f5fff"),
		Secondary: lipgloss.Color("#ff3030"),
		Accent:    lipgloss.Color("#ffa500"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#777777"),
		Bar:       lipgloss.Color("#1f5fff"),
		Roles:     roleColors("#ff3030", "#444444", "#ff3030", "#ffa500", "#ffff00"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Bar:       lipgloss.Color("#00ffff"),
		Roles:     roleColors("#ff00ff", "#ffffff", "#ff8800", "#ffff00", "#00ff00"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Bar:       lipgloss.Color("#00aa00"),
		Roles:     roleColors("#ccffcc", "#ffffff", "#88ff88", "#ffff00", "#ffcc00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Bar:       lipgloss.Color("#aaaaaa"),
		Roles:     roleColors("#0088ff", "#ffffff", "#0088ff", "#00ccff", "#66aaff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Bar:       lipgloss.Color("#0077be"),
		Roles:     roleColors("#ffd700", "#e0f0ff", "#00ff88", "#ffcc00", "#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Bar:       lipgloss.Color("#feca57"),
		Roles:     roleColors("#ff4757", "#fff5f5", "#ff6b6b", "#ff9ff3", "#5fd068"),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
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

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
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
