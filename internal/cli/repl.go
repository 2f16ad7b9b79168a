package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/agbru/digitcalc/internal/calculator"
)

// LastResult is replaced by the previous value when used as an operand.
const LastResult = "_"

// LineReader reads one line of input after showing a prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout bounds each evaluation. Zero disables the limit.
	Timeout time.Duration
	// HistoryFile persists the line history between sessions when set.
	HistoryFile string
}

// REPL is an interactive evaluation session.
type REPL struct {
	config    REPLConfig
	evaluator *calculator.Evaluator
	lines     LineReader
	out       io.Writer
	last      string
}

// NewREPL creates a session that evaluates through ev.
func NewREPL(ev *calculator.Evaluator, config REPLConfig) *REPL {
	return &REPL{
		config:    config,
		evaluator: ev,
		out:       os.Stdout,
	}
}

// SetInput reads commands from in instead of the terminal.
func (r *REPL) SetInput(in io.Reader) {
	r.lines = &plainReader{in: bufio.NewReader(in), out: r}
}

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// plainReader is the LineReader used when input is not a terminal.
type plainReader struct {
	in  *bufio.Reader
	out *REPL
}

func (p *plainReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) AppendHistory(string) {}
func (p *plainReader) Close() error         { return nil }

func (r *REPL) openTerminal() {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(r.complete)
	if r.config.HistoryFile != "" {
		if f, err := os.Open(r.config.HistoryFile); err == nil {
			_, _ = state.ReadHistory(f)
			f.Close()
		}
	}
	r.lines = state
}

func (r *REPL) saveHistory() {
	state, ok := r.lines.(*liner.State)
	if !ok || r.config.HistoryFile == "" {
		return
	}
	if f, err := os.Create(r.config.HistoryFile); err == nil {
		_, _ = state.WriteHistory(f)
		f.Close()
	}
}

// complete offers operation names and commands for the first word.
func (r *REPL) complete(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}
	var out []string
	for _, name := range append([]string{"help", "list", "exit"}, r.evaluator.Registry().List()...) {
		if strings.HasPrefix(name, line) {
			out = append(out, name)
		}
	}
	return out
}

// Start runs the session until exit or end of input.
func (r *REPL) Start() {
	if r.lines == nil {
		r.openTerminal()
	}
	defer func() {
		r.saveHistory()
		r.lines.Close()
	}()

	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	for {
		input, err := r.lines.Prompt("digitcalc> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ColorRed(), err, ColorReset())
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.lines.AppendHistory(input)

		if !r.processCommand(input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ColorCyan(), ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sdigitcalc - Interactive Mode%s                         %s║%s\n",
		ColorCyan(), ColorReset(), ColorBold(), ColorReset(), ColorCyan(), ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorCyan(), ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <args...>%s  - Evaluate an operation, e.g. int.div -7 2\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %slist [domain]%s   - List operations\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s            - Display this help\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s     - Exit interactive mode\n", ColorYellow(), ColorReset(), ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "Quote polynomials that contain spaces; %s%s%s stands for the last result.\n",
		ColorYellow(), LastResult, ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts, err := calculator.SplitArgs(input)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ColorRed(), err, ColorReset())
		return true
	}
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "list", "ls":
		r.cmdList(args)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ColorGreen(), ColorReset())
		return false
	default:
		r.evaluate(cmd, args)
	}
	return true
}

func (r *REPL) cmdList(args []string) {
	ops := r.evaluator.Operations()
	if len(args) > 0 {
		filtered := ops[:0:0]
		for _, op := range ops {
			if string(op.Domain) == args[0] || strings.HasPrefix(op.Name, args[0]) {
				filtered = append(filtered, op)
			}
		}
		ops = filtered
	}
	ListOperations(r.out, ops)
	fmt.Fprintln(r.out)
}

func (r *REPL) evaluate(op string, args []string) {
	if !r.evaluator.Registry().Has(op) {
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ColorRed(), op, ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ColorYellow(), ColorReset())
		return
	}
	for i, a := range args {
		if a == LastResult {
			if r.last == "" {
				fmt.Fprintf(r.out, "%sNo previous result%s\n", ColorRed(), ColorReset())
				return
			}
			args[i] = r.last
		}
	}

	ctx := context.Background()
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	res, err := r.evaluator.Evaluate(ctx, op, args)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ColorRed(), err, ColorReset())
		return
	}
	// "q rem r" is not an operand; keep the quotient.
	r.last, _, _ = strings.Cut(res.Value, calculator.RemainderSeparator)
	fmt.Fprintf(r.out, "  = %s%s%s  %s(%s)%s\n",
		ColorGreen(), res.Value, ColorReset(),
		ColorMagenta(), FormatExecutionDuration(res.Duration), ColorReset())
}
