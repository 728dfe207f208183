package render

import "github.com/charmbracelet/lipgloss"

// Palette maps the five render roles to colors.
type Palette struct {
	Name     string
	Default  lipgloss.Color
	Observed lipgloss.Color
	Queued   lipgloss.Color
	Path     lipgloss.Color
	Route    lipgloss.Color
}

// Color returns the color for role.
func (p Palette) Color(r Role) lipgloss.Color {
	switch r {
	case Observed:
		return p.Observed
	case Queued:
		return p.Queued
	case Path:
		return p.Path
	case Route:
		return p.Route
	default:
		return p.Default
	}
}

// WithColor returns a copy of p with role r recolored.
func (p Palette) WithColor(r Role, c lipgloss.Color) Palette {
	switch r {
	case Observed:
		p.Observed = c
	case Queued:
		p.Queued = c
	case Path:
		p.Path = c
	case Route:
		p.Route = c
	default:
		p.Default = c
	}
	return p
}

// Built-in palettes
var (
	ThemeClassic = Palette{
		Name:     "classic",
		Default:  lipgloss.Color("15"), // White
		Observed: lipgloss.Color("9"),  // Light red
		Queued:   lipgloss.Color("1"),  // Red
		Path:     lipgloss.Color("12"), // Light blue
		Route:    lipgloss.Color("#FFD580"),
	}

	ThemeOcean = Palette{
		Name:     "ocean",
		Default:  lipgloss.Color("#e0f0ff"),
		Observed: lipgloss.Color("#4488aa"),
		Queued:   lipgloss.Color("#00a8cc"),
		Path:     lipgloss.Color("#0077be"),
		Route:    lipgloss.Color("#ffd700"),
	}

	ThemeMono = Palette{
		Name:     "mono",
		Default:  lipgloss.Color("#ffffff"),
		Observed: lipgloss.Color("#444444"),
		Queued:   lipgloss.Color("#888888"),
		Path:     lipgloss.Color("#cccccc"),
		Route:    lipgloss.Color("#ffffff"),
	}

	Themes = []Palette{
		ThemeClassic,
		ThemeOcean,
		ThemeMono,
	}
)

// LookupTheme returns the built-in palette called name.
func LookupTheme(name string) (Palette, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Palette{}, false
}

// GetTheme returns a palette by name, falling back to classic.
func GetTheme(name string) Palette {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Palette {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}
