// Package store holds the client state: auth, threads and categories, users,
// leaderboard and navigation. All changes go through Dispatch.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/forum/frontend/internal/markdown"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

// ForumAPI is the subset of the Forum API the store calls.
type ForumAPI interface {
	GetThreads(ctx context.Context) ([]api.Thread, error)
	GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (api.ThreadDetail, error)
	VoteThread(ctx context.Context, token string, threadId domain.ThreadId, vote domain.VoteType) error
	VoteComment(ctx context.Context, token string, threadId domain.ThreadId, commentId domain.PostId, vote domain.VoteType) error
	GetUsers(ctx context.Context) ([]api.User, error)
	GetLeaderboards(ctx context.Context) ([]api.LeaderboardEntry, error)
	Register(ctx context.Context, req api.RegisterRequest) (api.User, error)
	Login(ctx context.Context, req api.LoginRequest) (string, error)
	GetOwnProfile(ctx context.Context, token string) (api.User, error)
}

// TokenStore persists the bearer token. Get returns an error when no token
// is stored.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// TextProcessor renders locally authored content.
type TextProcessor interface {
	Render(text string) (string, bool)
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newId func() string) Option {
	return func(s *Store) { s.newId = newId }
}

func WithTextProcessor(tp TextProcessor) Option {
	return func(s *Store) { s.text = tp }
}

// generations are bumped when an async load starts. A completion carrying an
// older number is dropped.
type generations struct {
	auth, threads, detail, users, leaderboard uint64
}

type Store struct {
	api    ForumAPI
	tokens TokenStore
	text   TextProcessor
	now    func() time.Time
	newId  func() string
	log    *slog.Logger

	mu    sync.Mutex
	state State
	gen   generations
}

func New(forumAPI ForumAPI, tokens TokenStore, opts ...Option) *Store {
	s := &Store{
		api:    forumAPI,
		tokens: tokens,
		text:   markdown.New(),
		now:    time.Now,
		newId:  uuid.NewString,
		log:    logger.For("store"),
		state:  initialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies intent. The returned error is also recorded in the error
// field of the affected partition, except for auth and validation failures
// which abort before anything changes.
func (s *Store) Dispatch(ctx context.Context, intent Intent) error {
	switch in := intent.(type) {
	case HydrateSession:
		return s.HydrateSession(ctx)
	case Login:
		return s.Login(ctx, in)
	case Register:
		return s.Register(ctx, in)
	case Logout:
		s.Logout()
	case ClearAuthError:
		s.update(func(st *State) { st.Auth.Error = "" })
	case LoadUsers:
		return s.LoadUsers(ctx)
	case LoadThreads:
		return s.LoadThreads(ctx)
	case LoadThreadDetail:
		_, err := s.LoadThreadDetail(ctx, in)
		return err
	case ClearSelectedThread:
		s.ClearSelectedThread()
	case LoadLeaderboard:
		return s.LoadLeaderboard(ctx)
	case CreateThread:
		_, err := s.CreateThread(in)
		return err
	case AddReply:
		_, err := s.AddReply(in)
		return err
	case VotePost:
		return s.VotePost(ctx, in)
	case NavigateHome:
		s.update(navigateHome)
	case NavigateToCategory:
		return s.navigateToCategory(in)
	case NavigateToThread:
		s.update(func(st *State) { st.UI.View = domain.ViewThread })
	case NavigateToLeaderboards:
		s.update(func(st *State) { st.UI.View = domain.ViewLeaderboards })
	case NavigateBack:
		s.update(navigateBack)
	case SetSearchQuery:
		s.update(func(st *State) { st.UI.SearchQuery = in.Query })
	default:
		panic(fmt.Sprintf("store: unhandled intent %T", intent))
	}
	return nil
}

// update runs a synchronous reducer under the lock.
func (s *Store) update(reduce func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reduce(&s.state)
}
