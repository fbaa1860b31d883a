package application

import (
	"context"

	"golang.org/x/time/rate"
)

type pacer interface {
	Wait(ctx context.Context) error
}

type limiterAdapter struct {
	limiter *rate.Limiter
}

// newVisitPacer returns a token bucket pacer, or nil when pacing is disabled.
func newVisitPacer(visitsPerSecond float64, burst int) pacer {
	if visitsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &limiterAdapter{
		limiter: rate.NewLimiter(rate.Limit(visitsPerSecond), burst),
	}
}

func (l *limiterAdapter) Wait(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}

type unpaced struct{}

func (unpaced) Wait(ctx context.Context) error {
	return ctx.Err()
}
