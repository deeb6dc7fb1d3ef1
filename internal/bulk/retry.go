package bulk

import (
	"context"
	"time"

	"github.com/marisa/content-optimizer/internal/types"
)

// attemptResult carries the outcome of a single generation attempt.
type attemptResult struct {
	content *types.GeneratedContent
	err     error
}

// executeWithRetry runs the generation function for one item, racing each
// attempt against the per-item timeout and retrying failed attempts with
// exponential backoff. It returns the number of attempts made; the total is
// capped at RetryAttempts+1.
//
// A timed-out attempt is abandoned, not aborted: the underlying call keeps
// running until it returns on its own. Mid-run cancellation of in-flight
// calls is deliberately out of scope; ctx cancellation only stops further
// attempts and backoff waits.
func (r *Runner) executeWithRetry(ctx context.Context, request types.GenerationRequest, cfg types.BulkConfig) (*types.GeneratedContent, int, error) {
	totalAttempts := cfg.RetryAttempts + 1

	var lastErr error
	for attempt := 1; attempt <= totalAttempts; attempt++ {
		content, err := r.runAttempt(ctx, request, cfg.ItemTimeout)
		if err == nil {
			return content, attempt, nil
		}
		lastErr = err

		if attempt == totalAttempts {
			break
		}

		// Exponential backoff: delay * 2^(attempt-1).
		delay := cfg.RetryDelay * time.Duration(1<<(attempt-1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		}
	}

	return nil, totalAttempts, lastErr
}

// runAttempt executes one generation call, racing it against the timeout.
func (r *Runner) runAttempt(ctx context.Context, request types.GenerationRequest, timeout time.Duration) (*types.GeneratedContent, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so a late completion never blocks the abandoned goroutine.
	done := make(chan attemptResult, 1)
	go func() {
		content, err := r.generate(attemptCtx, request)
		done <- attemptResult{content: content, err: err}
	}()

	select {
	case result := <-done:
		return result.content, result.err
	case <-attemptCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TimeoutError{Timeout: timeout}
	}
}
