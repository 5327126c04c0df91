package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/frontend/internal/apiclient"
	"github.com/itchan-dev/forum/frontend/internal/handler"
	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/frontend/internal/tokenstore"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
)

type Dependencies struct {
	Store      *store.Store
	Handler    *handler.Handler
	Public     config.Public
	Tokens     *tokenstore.Store
	CancelFunc context.CancelFunc
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	// Create cancellable context for background tasks
	ctx, cancel := context.WithCancel(context.Background())

	tokens, err := tokenstore.Open(cfg.Public.TokenDBPath)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	client := apiclient.New(cfg.Public.ApiBaseURL, cfg.Public.RequestTimeout)
	st := store.New(client, tokens)
	Bootstrap(ctx, st)

	if cfg.Public.RefreshInterval > 0 {
		NewRefresher(st).Start(ctx, cfg.Public.RefreshInterval)
	}

	return &Dependencies{
		Store:      st,
		Handler:    handler.New(st, cfg.Public),
		Public:     cfg.Public,
		Tokens:     tokens,
		CancelFunc: cancel,
	}, nil
}

// Bootstrap restores the persisted session and fills the users and thread
// partitions. Users go first so thread owners resolve on the first load.
// Failures are logged and left in state.
func Bootstrap(ctx context.Context, d Dispatcher) {
	for _, intent := range []store.Intent{store.HydrateSession{}, store.LoadUsers{}, store.LoadThreads{}} {
		if err := d.Dispatch(ctx, intent); err != nil {
			logger.Log.Warn("bootstrap step failed",
				"component", "setup",
				"intent", fmt.Sprintf("%T", intent),
				"error", err)
		}
	}
}

func (d *Dependencies) Close() error {
	if d.CancelFunc != nil {
		d.CancelFunc()
	}
	return d.Tokens.Close()
}
