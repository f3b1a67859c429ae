// Package retry is the one place version-conflict retries live. The ledger
// controller never loops internally: callers wrap their calls in a Policy so
// back-pressure stays visible.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

type Policy struct {
	MaxAttempts int
	MinJitter   time.Duration
	MaxJitter   time.Duration
}

func New(maxAttempts int, minJitter, maxJitter time.Duration) Policy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if maxJitter < minJitter {
		maxJitter = minJitter
	}
	return Policy{MaxAttempts: maxAttempts, MinJitter: minJitter, MaxJitter: maxJitter}
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// attempt budget is spent. Only domain.ErrVersionConflict is retryable;
// every other failure is terminal for the call.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.jitter()):
		}
	}
	return fmt.Errorf("retries exhausted after %d attempts: %w", p.MaxAttempts, err)
}

func (p Policy) jitter() time.Duration {
	if p.MaxJitter == p.MinJitter {
		return p.MinJitter
	}
	return p.MinJitter + time.Duration(rand.Int63n(int64(p.MaxJitter-p.MinJitter)))
}
