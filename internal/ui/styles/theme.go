package styles

import (
	"image/color"
	"os"
	"sort"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // main accent color (borders, titles)
	Accent  color.Color // highlight color (selected items)
	Success color.Color // success indicators
	Error   color.Color // error messages
	Muted   color.Color // disabled/inactive text
	Info    color.Color // informational text
	Warning color.Color // warnings, cancellations
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// Preset themes - Dark variants
var (
	// DefaultTheme is the default color scheme (dark only)
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"),
		Info:    lipgloss.Color("#8be9fd"),
		Warning: lipgloss.Color("#ffb86c"),
	}

	// NordTheme is based on the Nord color scheme (dark)
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#4c566a"),
		Info:    lipgloss.Color("#81a1c1"),
		Warning: lipgloss.Color("#ebcb8b"),
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

// NordLightTheme is based on the Nord color scheme (light)
var NordLightTheme = Theme{
	Primary: lipgloss.Color("#5e81ac"),
	Accent:  lipgloss.Color("#b48ead"),
	Success: lipgloss.Color("#a3be8c"),
	Error:   lipgloss.Color("#bf616a"),
	Muted:   lipgloss.Color("#9a9a9a"),
	Info:    lipgloss.Color("#81a1c1"),
	Warning: lipgloss.Color("#d08770"),
}

var themeFamilies = map[string]themeFamily{
	"none":    {Light: &NoneTheme, Dark: &NoneTheme},
	"default": {Dark: &DefaultTheme},
	"dracula": {Dark: &DraculaTheme},
	"nord":    {Light: &NordLightTheme, Dark: &NordTheme},
}

var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Names returns the available theme family names, sorted.
func Names() []string {
	names := make([]string, 0, len(themeFamilies))
	for name := range themeFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Init selects the named theme family, picking the light or dark variant
// from the terminal background. Unknown or empty names use the default theme.
func Init(name string) {
	family, ok := themeFamilies[name]
	if !ok {
		family = themeFamilies["default"]
	}
	isDark := true
	if family.Light != nil && family.Dark != nil {
		isDark = lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
	}
	Apply(pick(family, isDark))
}

// pick returns the variant for the background, falling back to whichever exists.
func pick(family themeFamily, isDark bool) Theme {
	if isDark && family.Dark != nil {
		return *family.Dark
	}
	if !isDark && family.Light != nil {
		return *family.Light
	}
	if family.Dark != nil {
		return *family.Dark
	}
	if family.Light != nil {
		return *family.Light
	}
	return DefaultTheme
}

// Apply makes t the active theme and rebuilds all global styles.
func Apply(t Theme) {
	currentTheme = t

	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Info = t.Info
	Warning = t.Warning

	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	CommandStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	PanelBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
}
