// Package ui provides theme and color support for the command-line output.
// It is shared by the CLI, the REPL and the usage printer so none of them
// needs to know how colors are chosen.
package ui

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// ThemeEnv selects the light or dark palette.
const ThemeEnv = "DIGITCALC_THEME"

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary highlights operation names and values.
	Primary string
	// Secondary is used for operands and less prominent elements.
	Secondary string
	// Success indicates a completed evaluation.
	Success string
	// Warning is used for headings and non-critical issues.
	Warning string
	// Error indicates failed evaluations.
	Error string
	// Info is used for durations and informational notes.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is tuned for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is tuned for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex

	// stdoutIsTerminal is replaced in tests.
	stdoutIsTerminal = func() bool { return IsTerminal(os.Stdout) }
)

// IsTerminal reports whether f is attached to a terminal, including the
// Cygwin and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ThemeByName maps "dark", "light" and "none" to their themes. Unknown
// names select the dark theme.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// SetTheme changes the active theme by name.
func SetTheme(name string) {
	SetCurrentTheme(ThemeByName(name))
}

// InitTheme picks the theme for this process. Colors are disabled when
// noColor is set, when NO_COLOR is present (https://no-color.org/) or when
// stdout is not a terminal. Otherwise DIGITCALC_THEME chooses the palette.
func InitTheme(noColor bool) {
	SetCurrentTheme(detectTheme(noColor))
}

func detectTheme(noColor bool) Theme {
	if noColor {
		return NoColorTheme
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return NoColorTheme
	}
	if !stdoutIsTerminal() {
		return NoColorTheme
	}
	return ThemeByName(os.Getenv(ThemeEnv))
}
