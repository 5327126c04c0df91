package store

import (
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

// Intent is a request to change the state. The set of intents is closed.
type Intent interface {
	isIntent()
}

// Auth
type (
	HydrateSession struct{}
	Login          struct{ api.LoginRequest }
	Register       struct{ api.RegisterRequest }
	Logout         struct{}
	ClearAuthError struct{}
)

// Data
type (
	LoadUsers        struct{}
	LoadThreads      struct{}
	LoadThreadDetail struct {
		ThreadId domain.ThreadId `validate:"required"`
	}
	ClearSelectedThread struct{}
	LoadLeaderboard     struct{}
)

// Local writes and votes
type (
	CreateThread struct {
		Title    string `validate:"required"`
		Body     string `validate:"required"`
		Category string `validate:"required"`
	}
	// AddReply targets the selected thread. ThreadId, when set, must match it.
	AddReply struct {
		ThreadId domain.ThreadId
		Content  string `validate:"required"`
	}
	VotePost struct {
		ThreadId domain.ThreadId `validate:"required"`
		PostId   domain.PostId   `validate:"required"`
		Vote     domain.VoteType `validate:"required,oneof=up down neutral"`
	}
)

// Navigation
type (
	NavigateHome       struct{}
	NavigateToCategory struct {
		CategoryId domain.CategoryId `validate:"required"`
	}
	NavigateToThread       struct{}
	NavigateToLeaderboards struct{}
	NavigateBack           struct{}
	SetSearchQuery         struct{ Query string }
)

func (HydrateSession) isIntent()         {}
func (Login) isIntent()                  {}
func (Register) isIntent()               {}
func (Logout) isIntent()                 {}
func (ClearAuthError) isIntent()         {}
func (LoadUsers) isIntent()              {}
func (LoadThreads) isIntent()            {}
func (LoadThreadDetail) isIntent()       {}
func (ClearSelectedThread) isIntent()    {}
func (LoadLeaderboard) isIntent()        {}
func (CreateThread) isIntent()           {}
func (AddReply) isIntent()               {}
func (VotePost) isIntent()               {}
func (NavigateHome) isIntent()           {}
func (NavigateToCategory) isIntent()     {}
func (NavigateToThread) isIntent()       {}
func (NavigateToLeaderboards) isIntent() {}
func (NavigateBack) isIntent()           {}
func (SetSearchQuery) isIntent()         {}
