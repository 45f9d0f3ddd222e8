package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 200 * time.Millisecond
)

// Do runs op with the default retry budget. Intended for transport-level
// failures only; callers must not wrap operations whose errors are
// application-level (constraint violations, permission denials).
func Do(ctx context.Context, op func() error) error {
	return DoWithBudget(ctx, DefaultMaxAttempts, DefaultBaseDelay, op)
}

// DoWithBudget runs op up to maxAttempts times, sleeping between attempts
// with an exponentially growing, jittered delay. The delay doubles each
// attempt and is drawn uniformly from [base/2, base+base/2).
func DoWithBudget(ctx context.Context, maxAttempts int, baseDelay time.Duration, op func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error

	delay := baseDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		if attempt == maxAttempts {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", maxAttempts).
			Msg("operation failed, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(jitter(delay)):
		}

		delay *= 2
	}

	return fmt.Errorf("all %d attempts failed: %w", maxAttempts, err)
}

func jitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}

	half := delay / 2

	return half + rand.N(delay)
}
