package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/digitcalc/internal/calculator"
)

// OutputConfig selects how a single evaluation is reported.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints the value only.
	Quiet bool
	// JSON prints a models.Evaluation record.
	JSON bool
}

// FormatExecutionDuration shows microseconds below a millisecond,
// milliseconds below a second and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// formatCall renders "op(a, b)".
func formatCall(op string, args []string) string {
	return fmt.Sprintf("%s(%s)", op, strings.Join(args, ", "))
}

// DisplayResult prints a successful evaluation for a human reader.
func DisplayResult(out io.Writer, res calculator.Result) {
	duration := FormatExecutionDuration(res.Duration)
	if res.Duration == 0 {
		duration = "< 1µs"
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ColorBlue(), formatCall(res.Operation, res.Args), ColorReset(),
		ColorGreen(), res.Value, ColorReset())
	fmt.Fprintf(out, "Evaluation time: %s%s%s\n", ColorMagenta(), duration, ColorReset())
}

// DisplayQuietResult prints the value alone, for scripts.
func DisplayQuietResult(out io.Writer, res calculator.Result) {
	fmt.Fprintln(out, res.Value)
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteResultToFile saves a result with a short commented header.
func WriteResultToFile(res calculator.Result, path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# digitcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", res.Operation)
	fmt.Fprintf(file, "# Operands: %s\n", strings.Join(res.Args, " "))
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "\n%s\n", res.Value)
	return nil
}

// DisplayEvaluation reports a successful evaluation in the mode selected by
// config and saves it when an output file is set.
func DisplayEvaluation(out io.Writer, res calculator.Result, config OutputConfig) error {
	switch {
	case config.JSON:
		if err := WriteJSON(out, calculator.Record(res, nil)); err != nil {
			return err
		}
	case config.Quiet:
		DisplayQuietResult(out, res)
	default:
		DisplayResult(out, res)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config.OutputFile); err != nil {
			return err
		}
		if !config.Quiet && !config.JSON {
			fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), config.OutputFile, ColorReset())
		}
	}
	return nil
}

// DisplayFailure reports a failed evaluation as a JSON record.
func DisplayFailure(out io.Writer, res calculator.Result, err error) error {
	return WriteJSON(out, calculator.Record(res, err))
}

// ListOperations prints the operation table used by -list and the REPL.
func ListOperations(out io.Writer, ops []calculator.Operation) {
	var domain calculator.Domain
	for _, op := range ops {
		if op.Domain != domain {
			domain = op.Domain
			fmt.Fprintf(out, "\n%s%s%s\n", ColorBold(), domain, ColorReset())
		}
		fmt.Fprintf(out, "  %s%-16s%s %-20s %s\n", ColorYellow(), op.Name, ColorReset(), op.Operands, op.Description)
	}
}
