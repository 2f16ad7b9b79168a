// Package orchestration runs batches of evaluations concurrently and
// reports them as a table or a JSON summary.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/digitcalc/internal/calculator"
	"github.com/agbru/digitcalc/internal/cli"
	"github.com/agbru/digitcalc/internal/config"
	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/logging"
	"github.com/agbru/digitcalc/pkg/models"
)

// JobResult is the outcome of one batch job.
type JobResult struct {
	Job    Job
	Result calculator.Result
	Err    error
}

// ProgressBufferMultiplier sizes the progress channel relative to the
// concurrency so workers rarely block on a slow terminal.
const ProgressBufferMultiplier = 5

// summaryValueWidth bounds the result column of the summary table.
const summaryValueWidth = 48

// ExecuteBatch evaluates jobs with at most cfg.Concurrency running at once.
// Results keep the order of jobs. Progress is drawn on out unless the
// output is quiet or JSON.
func ExecuteBatch(ctx context.Context, ev *calculator.Evaluator, jobs []Job, cfg config.AppConfig, out io.Writer) []JobResult {
	results := make([]JobResult, len(jobs))
	limit := cfg.Concurrency
	if limit < 1 {
		limit = 1
	}
	progressChan := make(chan cli.ProgressUpdate, limit*ProgressBufferMultiplier)

	shown := len(jobs)
	if cfg.Quiet || cfg.JSONOutput {
		shown = 0
	}
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, shown, out)

	var g errgroup.Group
	g.SetLimit(limit)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := ev.Evaluate(ctx, job.Op, job.Args)
			results[i] = JobResult{Job: job, Result: res, Err: err}
			progressChan <- cli.ProgressUpdate{Job: i, Failed: err != nil}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()
	return results
}

// Summarize aggregates results into their JSON form.
func Summarize(results []JobResult, elapsed time.Duration) models.BatchSummary {
	summary := models.BatchSummary{
		Total:       len(results),
		DurationMS:  float64(elapsed) / float64(time.Millisecond),
		Evaluations: make([]models.Evaluation, 0, len(results)),
	}
	for _, r := range results {
		rec := calculator.Record(r.Result, r.Err)
		if rec.Operation == "" {
			rec.Operation = r.Job.Op
			rec.Args = r.Job.Args
		}
		switch rec.Status {
		case models.StatusOK:
			summary.Succeeded++
		case models.StatusCanceled:
			summary.Canceled++
		default:
			summary.Failed++
		}
		summary.Evaluations = append(summary.Evaluations, rec)
	}
	return summary
}

// ExitCode maps a summary to the process status: success when every job
// succeeded, canceled when every job was canceled, batch failure otherwise.
func ExitCode(s models.BatchSummary) int {
	switch {
	case s.Succeeded == s.Total:
		return apperrors.ExitSuccess
	case s.Canceled == s.Total:
		return apperrors.ExitErrorCanceled
	default:
		return apperrors.ExitErrorBatch
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	edge := (width - 3) / 2
	return s[:edge] + "..." + s[len(s)-edge:]
}

// AnalyzeBatchResults prints the batch report and returns the exit code.
func AnalyzeBatchResults(results []JobResult, elapsed time.Duration, cfg config.AppConfig, out io.Writer) int {
	summary := Summarize(results, elapsed)
	if cfg.JSONOutput {
		if err := cli.WriteJSON(out, summary); err != nil {
			fmt.Fprintf(out, "Warning: failed to write JSON summary: %v\n", err)
		}
		return ExitCode(summary)
	}
	if cfg.Quiet {
		for _, rec := range summary.Evaluations {
			if rec.Status == models.StatusOK {
				fmt.Fprintln(out, rec.Result)
			} else {
				fmt.Fprintf(out, "error: %s\n", rec.Error)
			}
		}
		return ExitCode(summary)
	}

	fmt.Fprintf(out, "\n--- Batch Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%s#%s\t%sOperation%s\t%sDuration%s\t%sResult%s\n",
		cli.ColorUnderline(), cli.ColorReset(), cli.ColorUnderline(), cli.ColorReset(),
		cli.ColorUnderline(), cli.ColorReset(), cli.ColorUnderline(), cli.ColorReset())

	for i, r := range results {
		var status string
		switch {
		case r.Err == nil:
			status = fmt.Sprintf("%s%s%s", cli.ColorGreen(), truncate(r.Result.Value, summaryValueWidth), cli.ColorReset())
		case apperrors.IsContextError(r.Err):
			status = fmt.Sprintf("%sCanceled%s", cli.ColorYellow(), cli.ColorReset())
		default:
			status = fmt.Sprintf("%sFailure (%v)%s", cli.ColorRed(), r.Err, cli.ColorReset())
		}
		duration := cli.FormatExecutionDuration(r.Result.Duration)
		if r.Result.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%d\t%s%s%s\t%s%s%s\t%s\n",
			i+1,
			cli.ColorBlue(), truncate(r.Job.Op+" "+strings.Join(r.Job.Args, " "), summaryValueWidth), cli.ColorReset(),
			cli.ColorYellow(), duration, cli.ColorReset(),
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	fmt.Fprintf(out, "\nTotal: %d, succeeded: %d, failed: %d, canceled: %d in %s.\n",
		summary.Total, summary.Succeeded, summary.Failed, summary.Canceled, cli.FormatExecutionDuration(elapsed))
	return ExitCode(summary)
}

// RunBatch loads cfg.BatchFile, evaluates it within cfg.Timeout and prints
// the report on out. It returns the process exit code.
func RunBatch(ctx context.Context, ev *calculator.Evaluator, cfg config.AppConfig, logger logging.Logger, out, errOut io.Writer) int {
	jobs, err := LoadJobs(cfg.BatchFile)
	if err != nil {
		fmt.Fprintf(errOut, "%sBatch error: %v%s\n", cli.ColorRed(), err, cli.ColorReset())
		return apperrors.ExitErrorConfig
	}
	logger.Info("batch started",
		logging.String("file", cfg.BatchFile),
		logging.Int("jobs", len(jobs)),
		logging.Int("concurrency", cfg.Concurrency))

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	results := ExecuteBatch(ctx, ev, jobs, cfg, out)
	elapsed := time.Since(start)

	code := AnalyzeBatchResults(results, elapsed, cfg, out)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Error("batch deadline exceeded", ctx.Err(), logging.Duration("elapsed", elapsed))
	}
	logger.Info("batch finished", logging.Int("exit_code", code), logging.Duration("elapsed", elapsed))
	return code
}
