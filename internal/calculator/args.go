package calculator

import (
	"fmt"
	"strings"
	"unicode"
)

// SplitArgs splits a command line into fields. Double quotes group a field
// that contains spaces, such as the polynomial "1/1; 0/1; -1/1".
func SplitArgs(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			if started {
				fields = append(fields, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if started {
		fields = append(fields, current.String())
	}
	return fields, nil
}
