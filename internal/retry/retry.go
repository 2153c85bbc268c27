// Package retry provides an explicit retry policy applied at the call
// site: exponential backoff with jitter, bounded by total elapsed time
// rather than attempt count, with a pluggable give-up predicate.
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Notice describes one backoff pause, for diagnostics only.
type Notice struct {
	Wait   time.Duration
	Tries  int
	Target string
	Params map[string]any
}

// Policy controls how Do retries a failing call.
type Policy struct {
	// MaxElapsed caps cumulative wall-clock time across attempts. Once
	// the deadline passes, the last failure is returned.
	MaxElapsed time.Duration

	// InitialInterval and MaxInterval bound the exponential schedule.
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// GiveUp inspects a failure and reports whether retrying is
	// pointless. Nil means never give up early.
	GiveUp func(error) bool

	// OnBackoff is invoked before each pause. Nil disables notices.
	OnBackoff func(Notice)
}

// Do runs fn until it succeeds, GiveUp says stop, or MaxElapsed is
// exhausted. target and params are carried into backoff notices
// unmodified. The error returned is always fn's own last error, never a
// policy-local wrapper.
func (p Policy) Do(ctx context.Context, target string, params map[string]any, fn func() error) error {
	deadline := time.Now().Add(p.MaxElapsed)

	var lastErr error
	for tries := 1; ; tries++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if p.GiveUp != nil && p.GiveUp(lastErr) {
			return lastErr
		}

		wait := p.backoff(tries)
		if time.Now().Add(wait).After(deadline) {
			return lastErr
		}

		if p.OnBackoff != nil {
			p.OnBackoff(Notice{Wait: wait, Tries: tries, Target: target, Params: params})
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// backoff doubles the initial interval per attempt, caps it at
// MaxInterval, and applies +/-20% jitter.
func (p Policy) backoff(tries int) time.Duration {
	initial := p.InitialInterval
	if initial <= 0 {
		initial = 100 * time.Millisecond
	}

	wait := float64(initial) * math.Pow(2, float64(tries-1))
	if p.MaxInterval > 0 && wait > float64(p.MaxInterval) {
		wait = float64(p.MaxInterval)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(wait + jitter)
}
