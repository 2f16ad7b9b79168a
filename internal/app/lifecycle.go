package app

import (
	"context"
	"os/signal"
	"syscall"
)

// SetupSignals returns a context canceled on SIGINT or SIGTERM, so a
// running evaluation or batch stops with ExitErrorCanceled instead of
// killing the process mid-write. Call the returned function to stop
// listening.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
