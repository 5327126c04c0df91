package setup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu      sync.Mutex
	intents []store.Intent
	err     error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, intent store.Intent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.intents = append(d.intents, intent)
	return d.err
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.intents)
}

func TestBootstrap(t *testing.T) {
	t.Run("runs every step in order", func(t *testing.T) {
		d := &recordingDispatcher{}
		Bootstrap(context.Background(), d)
		assert.Equal(t, []store.Intent{store.HydrateSession{}, store.LoadUsers{}, store.LoadThreads{}}, d.intents)
	})

	t.Run("keeps going after a failure", func(t *testing.T) {
		d := &recordingDispatcher{err: errors.New("backend unavailable")}
		Bootstrap(context.Background(), d)
		assert.Len(t, d.intents, 3)
	})
}

func TestRefresher(t *testing.T) {
	d := &recordingDispatcher{}
	ctx, cancel := context.WithCancel(context.Background())

	NewRefresher(d).Start(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool { return d.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	// no ticks after shutdown
	time.Sleep(30 * time.Millisecond)
	stopped := d.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, d.count())
	for _, intent := range d.intents {
		assert.Equal(t, store.LoadThreads{}, intent)
	}
}

func TestSetupDependencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/users":
			_, _ = w.Write([]byte(`{"status":"success","message":"ok","data":{"users":[{"id":"user-1","name":"Dimas","email":"d@x.io","avatar":"a"}]}}`))
		case "/v1/threads":
			_, _ = w.Write([]byte(`{"status":"success","message":"ok","data":{"threads":[
				{"id":"thread-1","title":"Hello","body":"hi","category":"intro","createdAt":"2023-05-29T07:55:52.266Z",
				 "ownerId":"user-1","upVotesBy":[],"downVotesBy":[],"totalComments":0}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":"fail","message":"route not found","data":{}}`))
		}
	}))
	defer srv.Close()

	public := config.Defaults()
	public.ApiBaseURL = srv.URL + "/v1"
	public.TokenDBPath = filepath.Join(t.TempDir(), "token.db")
	public.RequestTimeout = time.Second

	deps, err := SetupDependencies(&config.Config{Public: public})
	require.NoError(t, err)
	defer deps.Close()

	state := deps.Store.Snapshot()
	require.Len(t, state.Threads.Threads, 1)
	assert.Equal(t, "Dimas", state.Threads.Threads[0].Author.Name)
	require.Len(t, state.Threads.Categories, 1)
	assert.Equal(t, "Intro", state.Threads.Categories[0].Name)
	assert.False(t, state.Auth.Session.Authenticated)
	assert.NotNil(t, deps.Handler)
}
