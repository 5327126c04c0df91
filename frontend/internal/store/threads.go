package store

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/frontend/internal/transform"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/utils"
)

// LoadThreads fetches the thread list and merges it with local threads.
func (s *Store) LoadThreads(ctx context.Context) error {
	s.mu.Lock()
	s.gen.threads++
	gen := s.gen.threads
	s.state.Threads.Loading = true
	s.state.Threads.Error = ""
	owners := ownerIndex(s.state.Users.Users)
	s.mu.Unlock()

	wire, err := s.api.GetThreads(ctx)

	var fresh []*domain.Thread
	var categories []domain.Category
	if err == nil {
		fresh = make([]*domain.Thread, 0, len(wire))
		for _, t := range wire {
			fresh = append(fresh, transform.ThreadSummary(t, owners[t.OwnerId]))
		}
		categories = transform.ExtractCategories(wire)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.threads {
		s.log.Debug("dropping stale thread list", "generation", gen)
		return err
	}
	s.state.Threads.Loading = false
	if err != nil {
		s.state.Threads.Error = err.Error()
		return fmt.Errorf("load threads: %w", err)
	}
	s.state.Threads.Threads = mergeThreads(s.state.Threads.Threads, fresh)
	s.state.Threads.Categories = mergeCategories(s.state.Threads.Categories, categories)
	s.log.Debug("threads loaded", "remote", len(fresh), "total", len(s.state.Threads.Threads))
	return nil
}

// LoadThreadDetail selects a thread. Local threads are served from the list
// collection; remote ones are fetched.
func (s *Store) LoadThreadDetail(ctx context.Context, in LoadThreadDetail) (*domain.Thread, error) {
	if err := utils.Validate(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.gen.detail++
	gen := s.gen.detail
	if domain.IsLocalThreadID(in.ThreadId) {
		defer s.mu.Unlock()
		// any remote load in flight is now stale and will not clear the flag
		s.state.Threads.LoadingDetail = false
		_, t := findThread(s.state.Threads.Threads, in.ThreadId)
		if t == nil || !t.Origin.IsLocal() {
			err := internal_errors.NotFoundf("local thread %s", in.ThreadId)
			s.state.Threads.Error = err.Error()
			return nil, err
		}
		s.state.Threads.Error = ""
		s.state.Threads.Selected = t.Clone()
		return t.Clone(), nil
	}
	s.state.Threads.LoadingDetail = true
	s.state.Threads.Error = ""
	s.mu.Unlock()

	wire, err := s.api.GetThreadDetail(ctx, in.ThreadId)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.detail {
		s.log.Debug("dropping stale thread detail", "thread", in.ThreadId)
		return nil, err
	}
	s.state.Threads.LoadingDetail = false
	if err != nil {
		s.state.Threads.Error = err.Error()
		return nil, fmt.Errorf("load thread %s: %w", in.ThreadId, err)
	}
	detail := transform.ThreadDetail(wire)
	s.state.Threads.Selected = detail
	return detail.Clone(), nil
}

// ClearSelectedThread also invalidates an in-flight detail load.
func (s *Store) ClearSelectedThread() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.detail++
	s.state.Threads.Selected = nil
	s.state.Threads.LoadingDetail = false
}

func ownerIndex(users []domain.User) map[domain.UserId]*api.User {
	idx := make(map[domain.UserId]*api.User, len(users))
	for _, u := range users {
		idx[u.Id] = &api.User{Id: u.Id, Name: u.Name, Avatar: u.Avatar}
	}
	return idx
}
