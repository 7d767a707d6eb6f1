package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// IdleSessionStore is the part of the session manager the worker needs.
type IdleSessionStore interface {
	CleanupIdleSessions(maxIdle time.Duration) int
}

// DefaultInterval is used when a worker is given a non-positive interval.
const DefaultInterval = 10 * time.Minute

type Worker struct {
	Sessions IdleSessionStore
	MaxIdle  time.Duration
	Interval time.Duration
}

func NewWorker(sessions IdleSessionStore, maxIdle, interval time.Duration) *Worker {
	return &Worker{Sessions: sessions, MaxIdle: maxIdle, Interval: interval}
}

// Start runs one cleanup immediately, then one per Interval until ctx is done.
// A non-positive Interval is replaced by DefaultInterval.
func (w *Worker) Start(ctx context.Context) {
	if w.Interval <= 0 {
		log.Warn().Str("component", "cleanup").Dur("interval", w.Interval).
			Dur("default", DefaultInterval).Msg("invalid cleanup interval, using default")
		w.Interval = DefaultInterval
	}

	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("background worker started")

	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	removed := w.Sessions.CleanupIdleSessions(w.MaxIdle)
	log.Debug().Str("component", "cleanup").Int("removed", removed).Msg("scheduled cleanup finished")
}
