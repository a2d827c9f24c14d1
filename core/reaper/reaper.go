package reaper

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/core/logger"
)

// Sweeper is anything that can evict its own expired entries. The user
// cache and session registry both qualify.
type Sweeper interface {
	ClearExpired(ctx context.Context) error
}

// Target pairs a sweeper with a name for logging.
type Target struct {
	Name    string
	Sweeper Sweeper
}

// Reaper periodically sweeps expired entries from its targets. One reaper
// instance serves the whole process; backends with native expiry make the
// sweep a cheap no-op.
type Reaper struct {
	interval time.Duration
	targets  []Target
	log      *slog.Logger
}

// Option configures the reaper.
type Option func(*Reaper)

// WithLogger attaches a structured logger. Without one the reaper is
// silent.
func WithLogger(log *slog.Logger) Option {
	return func(r *Reaper) {
		r.log = log
	}
}

// New creates a reaper sweeping every target once per interval.
func New(interval time.Duration, targets []Target, opts ...Option) *Reaper {
	r := &Reaper{
		interval: interval,
		targets:  targets,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks, sweeping on every tick until ctx is canceled, and returns
// ctx.Err(). A failing target is logged and skipped; one bad tick (or one
// unreachable backend) never stops the loop; the next tick retries.
func (r *Reaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	start := time.Now()
	for _, t := range r.targets {
		if err := t.Sweeper.ClearExpired(ctx); err != nil {
			r.log.ErrorContext(ctx, "expiry sweep failed",
				logger.Component("reaper"),
				logger.Namespace(t.Name),
				logger.Error(err),
			)
		}
	}
	r.log.DebugContext(ctx, "expiry sweep complete",
		logger.Component("reaper"),
		logger.Count("targets", len(r.targets)),
		logger.Elapsed(start),
	)
}
