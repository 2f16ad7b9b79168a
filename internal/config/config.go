// Package config provides the configuration management for the digitcalc
// application. It defines the configuration structure, parses command-line
// arguments and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/logging"
)

const (
	// EnvPrefix is the prefix for all environment variables read by digitcalc.
	EnvPrefix = "DIGITCALC_"
)

// Default configuration values.
const (
	// DefaultTimeout bounds a single evaluation or a whole batch.
	DefaultTimeout = 30 * time.Second
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultConcurrency is the number of batch jobs evaluated at once.
	DefaultConcurrency = 4
	// DefaultMaxDigits caps the textual size of each operand. Zero disables
	// the check.
	DefaultMaxDigits = 10_000
	// DefaultLogLevel is the zerolog level name used when none is given.
	DefaultLogLevel = "info"
)

// SupportedShells lists the shells accepted by -completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Op is the operation to evaluate, e.g. "nat.add". It is the first
	// positional argument.
	Op string
	// Args are the textual operands following Op.
	Args []string
	// Timeout sets the maximum duration of an evaluation or a batch run.
	Timeout time.Duration
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// Quiet prints only the value, for scripting.
	Quiet bool
	// NoColor disables colored output. NO_COLOR is honoured as well.
	NoColor bool
	// ServerMode, if true, starts the HTTP API.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// Interactive, if true, starts the REPL.
	Interactive bool
	// BatchFile is a .toml, .yaml, .yml or plain text job file.
	BatchFile string
	// Concurrency bounds the number of batch jobs in flight.
	Concurrency int
	// MaxDigits rejects operands longer than this many characters.
	MaxDigits int
	// LogLevel is a zerolog level name.
	LogLevel string
	// Completion, if set, prints the completion script for that shell.
	Completion string
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// ListOps prints the operation catalogue and exits.
	ListOps bool
}

// needsOperation reports whether the selected mode evaluates a single
// operation taken from the command line.
func (c AppConfig) needsOperation() bool {
	return !c.ServerMode && !c.Interactive && c.BatchFile == "" && c.Completion == "" && !c.ListOps
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableOps: the registered operation names (e.g., ["nat.add", "int.div"]).
//
// Returns:
//   - error: a ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate(availableOps []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Concurrency < 1 {
		return apperrors.NewConfigError("concurrency must be at least 1: %d", c.Concurrency)
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("max digits cannot be negative: %d", c.MaxDigits)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("unrecognized log level: '%s'", c.LogLevel)
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell: '%s'. Valid shells are: [%s]", c.Completion, strings.Join(SupportedShells, ", "))
	}
	if c.ServerMode && c.Port == "" {
		return apperrors.NewConfigError("server mode requires a port")
	}
	if !c.needsOperation() {
		return nil
	}
	if c.Op == "" {
		return apperrors.NewConfigError("no operation given. Use -list to see the available operations")
	}
	if !slices.Contains(availableOps, c.Op) {
		return apperrors.NewConfigError("unrecognized operation: '%s'. Use -list to see the available operations", c.Op)
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Flags come first; the first positional argument is the operation and the
// remaining ones are its operands, so negative operands such as "-7" are
// not mistaken for flags.
//
// Parameters:
//   - programName: the name of the program, used in the usage message.
//   - args: the command-line arguments (typically os.Args[1:]).
//   - errorWriter: where parsing errors and usage information are printed.
//   - availableOps: the valid operation names for validation.
//
// Returns:
//   - AppConfig: the populated configuration struct.
//   - error: an error if flag parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for an evaluation or a batch.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print the value only.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.Interactive, "i", false, "Interactive mode (shorthand).")
	fs.StringVar(&config.BatchFile, "batch", "", "Evaluate the jobs listed in a .toml, .yaml or text file.")
	fs.IntVar(&config.Concurrency, "concurrency", DefaultConcurrency, "Number of batch jobs evaluated concurrently.")
	fs.IntVar(&config.MaxDigits, "max-digits", DefaultMaxDigits, "Maximum operand length in characters (0 for no limit).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish).")
	fs.BoolVar(&config.ListOps, "list", false, "List the available operations.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if rest := fs.Args(); len(rest) > 0 {
		config.Op = strings.ToLower(rest[0])
		config.Args = append([]string(nil), rest[1:]...)
	}

	if err := config.Validate(availableOps); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
