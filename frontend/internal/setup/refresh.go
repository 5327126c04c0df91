package setup

import (
	"context"
	"time"

	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/logger"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, intent store.Intent) error
}

// Refresher periodically reloads the thread list. Local threads survive each
// reload.
type Refresher struct {
	store Dispatcher
}

func NewRefresher(d Dispatcher) *Refresher {
	return &Refresher{store: d}
}

// Start launches the refresh loop. It stops when ctx is cancelled.
func (r *Refresher) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)

	logger.Log.Info("started thread list background refresh",
		"component", "refresher",
		"interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := r.store.Dispatch(ctx, store.LoadThreads{}); err != nil {
					logger.Log.Error("failed to refresh thread list",
						"component", "refresher",
						"error", err)
				}
			case <-ctx.Done():
				logger.Log.Info("thread list refresh shutting down gracefully",
					"component", "refresher")
				return
			}
		}
	}()
}
