package common

import (
	"context"
	"time"

	"github.com/0xPolygon/lockbridge/log"
)

// RetryHandler paces the retries of a failing loop
type RetryHandler struct {
	RetryAfterErrorPeriod time.Duration
	// MaxRetryAttemptsAfterError, negative means retry forever
	MaxRetryAttemptsAfterError int
}

// Handle waits RetryAfterErrorPeriod before the next attempt. It stops the
// process once attempts exceeds MaxRetryAttemptsAfterError and returns early
// with the context error if ctx is done.
func (h *RetryHandler) Handle(ctx context.Context, funcName string, attempts int) error {
	if h.MaxRetryAttemptsAfterError > -1 && attempts >= h.MaxRetryAttemptsAfterError {
		log.Fatalf(
			"%s failed too many times (%d)",
			funcName, h.MaxRetryAttemptsAfterError,
		)
	}
	t := time.NewTimer(h.RetryAfterErrorPeriod)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
