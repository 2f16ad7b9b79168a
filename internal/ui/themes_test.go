package ui

import (
	"os"
	"testing"
)

// withTerminal forces terminal detection for the duration of a test.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return tty }
	t.Cleanup(func() { stdoutIsTerminal = orig })
}

func TestSetTheme(t *testing.T) {
	originalTheme := GetCurrentTheme()
	defer SetCurrentTheme(originalTheme)

	testCases := []struct {
		themeName string
		expected  Theme
	}{
		{"dark", DarkTheme},
		{"light", LightTheme},
		{"none", NoColorTheme},
		{"unknown", DarkTheme},
		{"", DarkTheme},
	}
	for _, tc := range testCases {
		SetTheme(tc.themeName)
		if got := GetCurrentTheme().Name; got != tc.expected.Name {
			t.Errorf("SetTheme(%q): got theme %q, want %q", tc.themeName, got, tc.expected.Name)
		}
	}
}

func TestInitTheme(t *testing.T) {
	originalTheme := GetCurrentTheme()
	defer SetCurrentTheme(originalTheme)

	tests := []struct {
		name     string
		noColor  bool
		noColorE bool
		tty      bool
		themeEnv string
		want     string
	}{
		{"flag disables colors", true, false, true, "", "none"},
		{"NO_COLOR disables colors", false, true, true, "", "none"},
		{"pipe disables colors", false, false, false, "", "none"},
		{"terminal defaults to dark", false, false, true, "", "dark"},
		{"theme env selects light", false, false, true, "light", "light"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTerminal(t, tt.tty)
			t.Setenv(ThemeEnv, tt.themeEnv)
			if tt.noColorE {
				t.Setenv("NO_COLOR", "1")
			} else {
				t.Setenv("NO_COLOR", "")
				os.Unsetenv("NO_COLOR")
			}
			InitTheme(tt.noColor)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("InitTheme(%v) = %q, want %q", tt.noColor, got, tt.want)
			}
		})
	}
}

func TestColorFunctions(t *testing.T) {
	originalTheme := GetCurrentTheme()
	defer SetCurrentTheme(originalTheme)

	SetCurrentTheme(NoColorTheme)
	for name, fn := range map[string]func() string{
		"reset": ColorReset, "red": ColorRed, "green": ColorGreen,
		"yellow": ColorYellow, "blue": ColorBlue, "magenta": ColorMagenta,
		"cyan": ColorCyan, "bold": ColorBold, "underline": ColorUnderline,
	} {
		if fn() != "" {
			t.Errorf("%s should be empty without colors", name)
		}
	}

	SetCurrentTheme(DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorBlue() != DarkTheme.Primary {
		t.Error("color functions should follow the current theme")
	}
}

func TestIsTerminalNil(t *testing.T) {
	t.Parallel()
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
}
