package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/digitcalc/internal/calculator"
	"github.com/agbru/digitcalc/internal/config"
	apperrors "github.com/agbru/digitcalc/internal/errors"
)

// RunSingle evaluates cfg.Op on cfg.Args within cfg.Timeout, reports the
// outcome on out (or errOut for human-readable failures) and returns the
// process exit code.
func RunSingle(ctx context.Context, ev *calculator.Evaluator, cfg config.AppConfig, out, errOut io.Writer) int {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, err := ev.Evaluate(ctx, cfg.Op, cfg.Args)
	if err != nil {
		if cfg.JSONOutput {
			if werr := DisplayFailure(out, res, err); werr != nil {
				fmt.Fprintf(errOut, "Error writing JSON output: %v\n", werr)
			}
			return apperrors.HandleEvaluationError(err, res.Duration, io.Discard, nil)
		}
		return apperrors.HandleEvaluationError(err, res.Duration, errOut, CLIColorProvider{})
	}

	outCfg := OutputConfig{OutputFile: cfg.OutputFile, Quiet: cfg.Quiet, JSON: cfg.JSONOutput}
	if err := DisplayEvaluation(out, res, outCfg); err != nil {
		fmt.Fprintf(errOut, "%sError saving result: %v%s\n", ColorRed(), err, ColorReset())
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
