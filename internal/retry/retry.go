package retry

import (
	"context"
	"log/slog"
	"time"
)

// Do runs fn up to attempts times, doubling the wait between failures
// starting from base. It returns the last error once attempts are exhausted,
// or the context error if ctx is canceled while waiting.
func Do(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	var err error
	backoff := base

	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		slog.WarnContext(ctx, "attempt failed, retrying",
			"attempt", attempt,
			"backoff", backoff.String(),
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return err
}
