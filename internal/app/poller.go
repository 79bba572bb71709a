package app

import (
	"context"
	"log"
	"time"

	"shellpanel/internal/session"
	"shellpanel/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately. Consecutive fetch failures back the
// cadence off exponentially so a downed supervisor is not hammered.
func StartPoller(ctx context.Context, store *state.Store, fetcher session.Fetcher, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			refresh(ctx, store, fetcher)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer.Reset(wait)

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, fetcher session.Fetcher) {
	sessions, err := fetcher.FetchSessions(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("session poll failed: %v", err)
		return
	}
	store.Update(sessions, nil)
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff. Zero failures means the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
