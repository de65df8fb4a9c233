package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter is a single token bucket shared by the whole HTTP surface.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a Limiter granting ratePerSec tokens per second.
// ratePerSec <= 0 yields a disabled limiter whose Wait never blocks.
func New(ratePerSec int) *Limiter {
	if ratePerSec <= 0 {
		return &Limiter{}
	}
	burst := ratePerSec // burst == rate: prevents any "saved up" burst above the limit
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Enabled reports whether the limiter actually limits.
func (l *Limiter) Enabled() bool { return l.bucket != nil }

// Wait blocks until the limiter grants a token.
// Returns a non-nil error only if ctx is cancelled while waiting.
// A disabled limiter grants immediately, even on a dead context.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.bucket == nil {
		return nil
	}
	return l.bucket.Wait(ctx)
}
