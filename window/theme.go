package window

import "fmt"

// Theme selects the color of the native title bar. It does not currently
// track live changes to the system theme.
type Theme uint8

const (
	ThemeLight Theme = iota
	ThemeDark
)

// String returns the theme's configuration name.
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return fmt.Sprintf("Theme(%d)", uint8(t))
	}
}

// ParseTheme converts a configuration string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}
