package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agbru/digitcalc/internal/calculator"
	"github.com/agbru/digitcalc/internal/cli"
	"github.com/agbru/digitcalc/internal/config"
	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/logging"
	"github.com/agbru/digitcalc/internal/orchestration"
	"github.com/agbru/digitcalc/internal/server"
	"github.com/agbru/digitcalc/internal/ui"
)

// historyFileName is created in the user's home directory by the REPL.
const historyFileName = ".digitcalc_history"

// Application represents the digitcalc application instance.
// It encapsulates the configuration and runs one of the modes
// (completion, listing, server, REPL, batch, single evaluation).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Evaluator runs the registered operations for every mode.
	Evaluator *calculator.Evaluator
	// Logger receives structured logs at Config.LogLevel.
	Logger logging.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New parses args (program name first) and builds the Application.
func New(args []string, errWriter io.Writer) (*Application, error) {
	registry := calculator.GlobalRegistry()

	programName := "digitcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, registry.List())
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("unrecognized log level: '%s'", cfg.LogLevel)
	}
	logger := logging.NewLogger(errWriter, "digitcalc", level)

	return &Application{
		Config: cfg,
		Evaluator: calculator.NewEvaluator(
			calculator.WithRegistry(registry),
			calculator.WithLogger(logger),
			calculator.WithMaxDigits(cfg.MaxDigits)),
		Logger:    logger,
		ErrWriter: errWriter,
	}, nil
}

// Run dispatches to the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	// Respects -no-color, NO_COLOR and non-terminal output.
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.ListOps:
		cli.ListOperations(out, a.Evaluator.Operations())
		return apperrors.ExitSuccess
	case a.Config.ServerMode:
		return a.runServer()
	case a.Config.Interactive:
		return a.runREPL(out)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	default:
		return a.runSingle(ctx, out)
	}
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Evaluator.Registry().List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runServer() int {
	srv := server.NewServer(a.Config,
		server.WithEvaluator(a.Evaluator),
		server.WithLogger(a.Logger))
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	cfg := cli.REPLConfig{Timeout: a.Config.Timeout}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, historyFileName)
	}
	repl := cli.NewREPL(a.Evaluator, cfg)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runBatch runs a job file. The timeout is applied by the batch runner,
// signals cancel the remaining jobs.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, stop := SetupSignals(ctx)
	defer stop()
	return orchestration.RunBatch(ctx, a.Evaluator, a.Config, a.Logger, out, a.ErrWriter)
}

func (a *Application) runSingle(ctx context.Context, out io.Writer) int {
	ctx, stop := SetupSignals(ctx)
	defer stop()
	return cli.RunSingle(ctx, a.Evaluator, a.Config, out, a.ErrWriter)
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
