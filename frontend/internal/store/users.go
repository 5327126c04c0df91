package store

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/frontend/internal/transform"
	"github.com/itchan-dev/forum/shared/domain"
)

func (s *Store) LoadUsers(ctx context.Context) error {
	s.mu.Lock()
	s.gen.users++
	gen := s.gen.users
	s.state.Users.Loading = true
	s.state.Users.Error = ""
	s.mu.Unlock()

	wire, err := s.api.GetUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.users {
		return err
	}
	s.state.Users.Loading = false
	if err != nil {
		s.state.Users.Error = err.Error()
		return fmt.Errorf("load users: %w", err)
	}
	users := make([]domain.User, 0, len(wire))
	for _, u := range wire {
		users = append(users, transform.User(u))
	}
	s.state.Users.Users = users
	return nil
}

func (s *Store) LoadLeaderboard(ctx context.Context) error {
	s.mu.Lock()
	s.gen.leaderboard++
	gen := s.gen.leaderboard
	s.state.Leaderboard.Loading = true
	s.state.Leaderboard.Error = ""
	s.mu.Unlock()

	wire, err := s.api.GetLeaderboards(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.leaderboard {
		return err
	}
	s.state.Leaderboard.Loading = false
	if err != nil {
		s.state.Leaderboard.Error = err.Error()
		return fmt.Errorf("load leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(wire))
	for _, e := range wire {
		entries = append(entries, domain.LeaderboardEntry{User: transform.User(e.User), Score: e.Score})
	}
	s.state.Leaderboard.Entries = entries
	return nil
}
