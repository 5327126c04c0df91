package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	dispatched []store.Intent
	state      store.State

	MockDispatch         func(ctx context.Context, intent store.Intent) error
	MockLoadThreadDetail func(ctx context.Context, in store.LoadThreadDetail) (*domain.Thread, error)
	MockCreateThread     func(in store.CreateThread) (*domain.Thread, error)
	MockAddReply         func(in store.AddReply) (*domain.Post, error)
}

func (m *MockStore) Dispatch(ctx context.Context, intent store.Intent) error {
	m.dispatched = append(m.dispatched, intent)
	if m.MockDispatch != nil {
		return m.MockDispatch(ctx, intent)
	}
	return nil
}

func (m *MockStore) Snapshot() store.State {
	return m.state
}

func (m *MockStore) LoadThreadDetail(ctx context.Context, in store.LoadThreadDetail) (*domain.Thread, error) {
	if m.MockLoadThreadDetail != nil {
		return m.MockLoadThreadDetail(ctx, in)
	}
	return nil, internal_errors.NotFoundf("thread %s", in.ThreadId)
}

func (m *MockStore) CreateThread(in store.CreateThread) (*domain.Thread, error) {
	if m.MockCreateThread != nil {
		return m.MockCreateThread(in)
	}
	return nil, nil
}

func (m *MockStore) AddReply(in store.AddReply) (*domain.Post, error) {
	if m.MockAddReply != nil {
		return m.MockAddReply(in)
	}
	return nil, nil
}

func createRequest(t *testing.T, method, url, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func TestCreateThreadHandler(t *testing.T) {
	route := "/v1/threads"

	t.Run("local thread is flagged", func(t *testing.T) {
		mockStore := &MockStore{
			MockCreateThread: func(in store.CreateThread) (*domain.Thread, error) {
				assert.Equal(t, store.CreateThread{Title: "Hi", Body: "text", Category: "react"}, in)
				return &domain.Thread{Id: "local-thread-1", Origin: domain.LocalOrigin(), Title: in.Title}, nil
			},
		}
		h := New(mockStore, config.Defaults())
		router := chi.NewRouter()
		router.Post(route, h.CreateThread)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, `{"title":"Hi","body":"text","category":"react"}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp api.ThreadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Local)
		assert.Equal(t, api.LocalNotice, resp.Notice)
		assert.Equal(t, "local-thread-1", resp.Thread.Id)
	})

	errorCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"unauthenticated", &internal_errors.AuthRequiredError{Action: "create a thread"}, http.StatusUnauthorized},
		{"validation", &internal_errors.ValidationError{Message: "title is required"}, http.StatusBadRequest},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := &MockStore{
				MockCreateThread: func(in store.CreateThread) (*domain.Thread, error) { return nil, tc.err },
			}
			h := New(mockStore, config.Defaults())
			rr := httptest.NewRecorder()

			h.CreateThread(rr, createRequest(t, http.MethodPost, route, `{"title":""}`))

			assert.Equal(t, tc.expected, rr.Code)
			assert.Equal(t, tc.err.Error(), decodeError(t, rr))
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		h := New(&MockStore{}, config.Defaults())
		rr := httptest.NewRecorder()

		h.CreateThread(rr, createRequest(t, http.MethodPost, route, `{ivalid json::}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Body is invalid json", decodeError(t, rr))
	})
}

func TestGetThreadHandler(t *testing.T) {
	route := "/v1/threads/{threadId}"

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"found", nil, http.StatusOK},
		{"not found", internal_errors.NotFoundf("local thread x"), http.StatusNotFound},
		{"remote failure", &internal_errors.RemoteError{Message: "thread not found", StatusCode: 404}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &MockStore{
				MockLoadThreadDetail: func(ctx context.Context, in store.LoadThreadDetail) (*domain.Thread, error) {
					assert.Equal(t, "thread-1", in.ThreadId)
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.Thread{Id: in.ThreadId, Origin: domain.RemoteOrigin(in.ThreadId)}, nil
				},
			}
			h := New(mockStore, config.Defaults())
			router := chi.NewRouter()
			router.Get(route, h.GetThread)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, createRequest(t, http.MethodGet, "/v1/threads/thread-1", ""))

			assert.Equal(t, tt.expected, rr.Code)
			if tt.err == nil {
				var resp api.ThreadResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.False(t, resp.Local)
				assert.Empty(t, resp.Notice)
			}
		})
	}
}

func TestVotePostHandler(t *testing.T) {
	selected := &domain.Thread{Id: "thread-1", Posts: []*domain.Post{{Id: "thread-1-initial", UpvoteCount: 1}}}
	mockStore := &MockStore{state: store.State{Threads: store.ThreadsState{Selected: selected}}}
	h := New(mockStore, config.Defaults())
	router := chi.NewRouter()
	router.Post("/v1/threads/{threadId}/posts/{postId}/vote", h.VotePost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/v1/threads/thread-1/posts/thread-1-initial/vote", `{"vote_type":"up"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, mockStore.dispatched, 1)
	assert.Equal(t, store.VotePost{ThreadId: "thread-1", PostId: "thread-1-initial", Vote: domain.VoteUp}, mockStore.dispatched[0])
	var resp api.PostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Post.UpvoteCount)
}

func TestVotePostHandler_SelectionMoved(t *testing.T) {
	tests := []struct {
		name     string
		selected *domain.Thread
	}{
		{"selection cleared", nil},
		{"other thread selected", &domain.Thread{Id: "thread-2", Posts: []*domain.Post{{Id: "thread-1-initial"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &MockStore{state: store.State{Threads: store.ThreadsState{Selected: tt.selected}}}
			h := New(mockStore, config.Defaults())
			router := chi.NewRouter()
			router.Post("/v1/threads/{threadId}/posts/{postId}/vote", h.VotePost)
			rr := httptest.NewRecorder()

			assert.NotPanics(t, func() {
				router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/v1/threads/thread-1/posts/thread-1-initial/vote", `{"vote_type":"up"}`))
			})

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "thread thread-1: not found", decodeError(t, rr))
		})
	}
}

func TestNavigateHandler(t *testing.T) {
	tests := []struct {
		body     string
		expected store.Intent
	}{
		{`{"to":"home"}`, store.NavigateHome{}},
		{`{"to":"category","category_id":"react"}`, store.NavigateToCategory{CategoryId: "react"}},
		{`{"to":"thread"}`, store.NavigateToThread{}},
		{`{"to":"leaderboards"}`, store.NavigateToLeaderboards{}},
		{`{"to":"back"}`, store.NavigateBack{}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			mockStore := &MockStore{}
			h := New(mockStore, config.Defaults())
			rr := httptest.NewRecorder()

			h.Navigate(rr, createRequest(t, http.MethodPost, "/v1/navigation", tt.body))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, []store.Intent{tt.expected}, mockStore.dispatched)
		})
	}

	t.Run("unknown destination", func(t *testing.T) {
		mockStore := &MockStore{}
		h := New(mockStore, config.Defaults())
		rr := httptest.NewRecorder()

		h.Navigate(rr, createRequest(t, http.MethodPost, "/v1/navigation", `{"to":"nowhere"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, mockStore.dispatched)
	})
}

func TestLimitParam(t *testing.T) {
	mockStore := &MockStore{}
	h := New(mockStore, config.Defaults())

	rr := httptest.NewRecorder()
	h.GetRecentThreads(rr, createRequest(t, http.MethodGet, "/v1/threads/recent?limit=-1", ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.GetPopularThreads(rr, createRequest(t, http.MethodGet, "/v1/threads/popular?limit=2", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHealth(t *testing.T) {
	h := New(&MockStore{}, config.Defaults())
	rr := httptest.NewRecorder()

	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
