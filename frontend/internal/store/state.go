package store

import (
	"slices"

	"github.com/itchan-dev/forum/shared/domain"
)

type AuthState struct {
	Session domain.Session `json:"session"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}

type ThreadsState struct {
	Threads       []*domain.Thread  `json:"threads"` // local-origin threads first
	Categories    []domain.Category `json:"categories"`
	Selected      *domain.Thread    `json:"selected,omitempty"`
	Loading       bool              `json:"loading"`
	LoadingDetail bool              `json:"loading_detail"`
	Error         string            `json:"error,omitempty"`
}

type UsersState struct {
	Users   []domain.User `json:"users"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

type LeaderboardState struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Loading bool                      `json:"loading"`
	Error   string                    `json:"error,omitempty"`
}

type UIState struct {
	View             domain.View       `json:"view"`
	SelectedCategory domain.CategoryId `json:"selected_category,omitempty"` // empty when none
	SearchQuery      string            `json:"search_query"`
}

// State composes the partitions. Each mutation touches exactly one of them.
type State struct {
	Auth        AuthState        `json:"auth"`
	Threads     ThreadsState     `json:"threads"`
	Users       UsersState       `json:"users"`
	Leaderboard LeaderboardState `json:"leaderboard"`
	UI          UIState          `json:"ui"`
}

func initialState() State {
	return State{
		Threads:     ThreadsState{Threads: []*domain.Thread{}, Categories: []domain.Category{}},
		Users:       UsersState{Users: []domain.User{}},
		Leaderboard: LeaderboardState{Entries: []domain.LeaderboardEntry{}},
		UI:          UIState{View: domain.ViewHome},
	}
}

// Clone returns a copy sharing no mutable memory with s.
func (s State) Clone() State {
	c := s
	if u := s.Auth.Session.CurrentUser; u != nil {
		user := *u
		c.Auth.Session.CurrentUser = &user
	}

	c.Threads.Threads = cloneThreads(s.Threads.Threads)
	c.Threads.Categories = slices.Clone(s.Threads.Categories)
	c.Threads.Selected = s.Threads.Selected.Clone()

	c.Users.Users = slices.Clone(s.Users.Users)
	c.Leaderboard.Entries = slices.Clone(s.Leaderboard.Entries)
	return c
}

func cloneThreads(threads []*domain.Thread) []*domain.Thread {
	if threads == nil {
		return nil
	}
	out := make([]*domain.Thread, len(threads))
	for i, t := range threads {
		out[i] = t.Clone()
	}
	return out
}
