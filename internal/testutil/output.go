// Package testutil holds helpers shared by the digitcalc terminal tests.
package testutil

import (
	"regexp"
	"strings"
	"testing"
)

// Colour codes from the CLI and cursor toggles from the spinner.
var escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripAnsiCodes returns s without terminal escape sequences.
func StripAnsiCodes(s string) string {
	return escapes.ReplaceAllString(s, "")
}

// Results returns, in order, the values the REPL printed as "  = value",
// possibly after a prompt. The trailing "(duration)" annotation is dropped.
func Results(out string) []string {
	var values []string
	for _, line := range strings.Split(StripAnsiCodes(out), "\n") {
		_, value, ok := strings.Cut(line, "  = ")
		if !ok {
			continue
		}
		if i := strings.LastIndex(value, "  ("); i >= 0 {
			value = value[:i]
		}
		values = append(values, strings.TrimSpace(value))
	}
	return values
}

// ContainsAll reports every want missing from the plain form of out.
func ContainsAll(t testing.TB, out string, wants ...string) {
	t.Helper()
	plain := StripAnsiCodes(out)
	for _, want := range wants {
		if !strings.Contains(plain, want) {
			t.Errorf("output lacks %q:\n%s", want, plain)
		}
	}
}
