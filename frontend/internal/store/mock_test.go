package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/stretchr/testify/require"
)

type MockForumAPI struct {
	mu    sync.Mutex
	calls []string

	MockGetThreads      func(ctx context.Context) ([]api.Thread, error)
	MockGetThreadDetail func(ctx context.Context, threadId domain.ThreadId) (api.ThreadDetail, error)
	MockVoteThread      func(ctx context.Context, token string, threadId domain.ThreadId, vote domain.VoteType) error
	MockVoteComment     func(ctx context.Context, token string, threadId domain.ThreadId, commentId domain.PostId, vote domain.VoteType) error
	MockGetUsers        func(ctx context.Context) ([]api.User, error)
	MockGetLeaderboards func(ctx context.Context) ([]api.LeaderboardEntry, error)
	MockRegister        func(ctx context.Context, req api.RegisterRequest) (api.User, error)
	MockLogin           func(ctx context.Context, req api.LoginRequest) (string, error)
	MockGetOwnProfile   func(ctx context.Context, token string) (api.User, error)
}

func (m *MockForumAPI) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockForumAPI) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockForumAPI) GetThreads(ctx context.Context) ([]api.Thread, error) {
	m.record("GetThreads")
	if m.MockGetThreads != nil {
		return m.MockGetThreads(ctx)
	}
	return nil, nil
}

func (m *MockForumAPI) GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (api.ThreadDetail, error) {
	m.record("GetThreadDetail " + threadId)
	if m.MockGetThreadDetail != nil {
		return m.MockGetThreadDetail(ctx, threadId)
	}
	return api.ThreadDetail{}, nil
}

func (m *MockForumAPI) VoteThread(ctx context.Context, token string, threadId domain.ThreadId, vote domain.VoteType) error {
	m.record(fmt.Sprintf("VoteThread %s %s", threadId, vote))
	if m.MockVoteThread != nil {
		return m.MockVoteThread(ctx, token, threadId, vote)
	}
	return nil
}

func (m *MockForumAPI) VoteComment(ctx context.Context, token string, threadId domain.ThreadId, commentId domain.PostId, vote domain.VoteType) error {
	m.record(fmt.Sprintf("VoteComment %s %s %s", threadId, commentId, vote))
	if m.MockVoteComment != nil {
		return m.MockVoteComment(ctx, token, threadId, commentId, vote)
	}
	return nil
}

func (m *MockForumAPI) GetUsers(ctx context.Context) ([]api.User, error) {
	m.record("GetUsers")
	if m.MockGetUsers != nil {
		return m.MockGetUsers(ctx)
	}
	return nil, nil
}

func (m *MockForumAPI) GetLeaderboards(ctx context.Context) ([]api.LeaderboardEntry, error) {
	m.record("GetLeaderboards")
	if m.MockGetLeaderboards != nil {
		return m.MockGetLeaderboards(ctx)
	}
	return nil, nil
}

func (m *MockForumAPI) Register(ctx context.Context, req api.RegisterRequest) (api.User, error) {
	m.record("Register")
	if m.MockRegister != nil {
		return m.MockRegister(ctx, req)
	}
	return api.User{}, nil
}

func (m *MockForumAPI) Login(ctx context.Context, req api.LoginRequest) (string, error) {
	m.record("Login")
	if m.MockLogin != nil {
		return m.MockLogin(ctx, req)
	}
	return "", nil
}

func (m *MockForumAPI) GetOwnProfile(ctx context.Context, token string) (api.User, error) {
	m.record("GetOwnProfile")
	if m.MockGetOwnProfile != nil {
		return m.MockGetOwnProfile(ctx, token)
	}
	return api.User{}, nil
}

var errNoToken = errors.New("no token")

type memTokens struct {
	token string
	set   bool
}

func (m *memTokens) Get() (string, error) {
	if !m.set {
		return "", errNoToken
	}
	return m.token, nil
}

func (m *memTokens) Set(token string) error {
	m.token, m.set = token, true
	return nil
}

func (m *memTokens) Delete() error {
	m.token, m.set = "", false
	return nil
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, forumAPI *MockForumAPI, tokens *memTokens) *Store {
	t.Helper()
	if tokens == nil {
		tokens = &memTokens{}
	}
	n := 0
	return New(forumAPI, tokens,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

var alice = api.User{Id: "user-alice", Name: "Alice", Email: "alice@x.io", Avatar: "alice.png"}

// logIn puts s into an authenticated state as alice.
func logIn(t *testing.T, s *Store, forumAPI *MockForumAPI) {
	t.Helper()
	forumAPI.MockLogin = func(ctx context.Context, req api.LoginRequest) (string, error) { return "tok-alice", nil }
	forumAPI.MockGetOwnProfile = func(ctx context.Context, token string) (api.User, error) { return alice, nil }
	require.NoError(t, s.Dispatch(context.Background(), Login{api.LoginRequest{Email: alice.Email, Password: "secret"}}))
	forumAPI.mu.Lock()
	forumAPI.calls = nil
	forumAPI.mu.Unlock()
}

func wireThread(id, category string, comments int) api.Thread {
	return api.Thread{
		Id:            id,
		Title:         "Title " + id,
		Body:          "Body of " + id,
		Category:      category,
		CreatedAt:     testNow.Add(-time.Hour),
		OwnerId:       "user-bob",
		UpVotesBy:     []string{},
		DownVotesBy:   []string{},
		TotalComments: comments,
	}
}
