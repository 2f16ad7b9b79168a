// Package cli implements the terminal front end of digitcalc: single
// evaluation output, batch progress, the interactive REPL and shell
// completion scripts.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/digitcalc/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Color helpers delegate to the active ui theme.

func ColorReset() string     { return ui.ColorReset() }
func ColorRed() string       { return ui.ColorRed() }
func ColorGreen() string     { return ui.ColorGreen() }
func ColorYellow() string    { return ui.ColorYellow() }
func ColorBlue() string      { return ui.ColorBlue() }
func ColorMagenta() string   { return ui.ColorMagenta() }
func ColorCyan() string      { return ui.ColorCyan() }
func ColorBold() string      { return ui.ColorBold() }
func ColorUnderline() string { return ui.ColorUnderline() }

// Spinner abstracts the terminal spinner so DisplayProgress can be tested.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressUpdate reports that one batch job has finished.
type ProgressUpdate struct {
	// Job is the index of the job in the batch.
	Job int
	// Failed is set when the job did not produce a value.
	Failed bool
}

// ProgressState counts finished jobs.
type ProgressState struct {
	total  int
	done   int
	failed int
}

// NewProgressState tracks a batch of total jobs.
func NewProgressState(total int) *ProgressState {
	return &ProgressState{total: total}
}

// Record counts one finished job.
func (ps *ProgressState) Record(u ProgressUpdate) {
	if ps.done >= ps.total {
		return
	}
	ps.done++
	if u.Failed {
		ps.failed++
	}
}

// Fraction returns the share of finished jobs in [0, 1].
func (ps *ProgressState) Fraction() float64 {
	if ps.total == 0 {
		return 0
	}
	return float64(ps.done) / float64(ps.total)
}

// ProgressWithETA extends ProgressState with a remaining time estimate
// based on the mean time per finished job.
type ProgressWithETA struct {
	*ProgressState
	startTime time.Time
	now       func() time.Time
}

// NewProgressWithETA starts tracking total jobs from now.
func NewProgressWithETA(total int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(total),
		startTime:     time.Now(),
		now:           time.Now,
	}
}

// GetETA estimates the time left, or 0 when no job has finished yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.done == 0 || p.done >= p.total {
		return 0
	}
	perJob := p.now().Sub(p.startTime) / time.Duration(p.done)
	eta := perJob * time.Duration(p.total-p.done)
	if eta > 24*time.Hour {
		eta = 24 * time.Hour
	}
	return eta
}

// FormatETA renders an estimate as "< 1s", "42s", "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		minutes := int(eta.Minutes())
		if seconds := int(eta.Seconds()) % 60; seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}
	hours := int(eta.Hours())
	if minutes := int(eta.Minutes()) % 60; minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

func progressLine(p *ProgressWithETA) string {
	return fmt.Sprintf("Jobs: %d/%d [%s] failed: %d ETA: %s",
		p.done, p.total, progressBar(p.Fraction(), ProgressBarWidth), p.failed, FormatETA(p.GetETA()))
}

// DisplayProgress renders a spinner and a job counter until progressChan is
// closed, then prints the final line. It runs in its own goroutine and
// signals wg when done.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	if total <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressWithETA(total)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				spinnerStopped = true
				fmt.Fprintln(out, progressLine(state))
				return
			}
			state.Record(update)
		case <-ticker.C:
			s.UpdateSuffix(" " + progressLine(state))
		}
	}
}
