package api

import (
	"github.com/itchan-dev/forum/shared/domain"
)

// Response DTOs of the view surface

// LocalNotice is shown for writes that never reached the Forum API.
const LocalNotice = "created locally (demo mode)"

type ThreadsResponse struct {
	Threads []*domain.Thread `json:"threads"`
}

type ThreadResponse struct {
	Thread *domain.Thread `json:"thread"`
	Local  bool           `json:"local"`
	Notice string         `json:"notice,omitempty"`
}

type PostResponse struct {
	Post   *domain.Post `json:"post"`
	Local  bool         `json:"local"`
	Notice string       `json:"notice,omitempty"`
}

type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

type UsersResponse struct {
	Users []domain.User `json:"users"`
}

type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

type SessionResponse struct {
	Session domain.Session `json:"session"`
	Error   string         `json:"error,omitempty"`
}

type NavigateRequest struct {
	To         string `json:"to" validate:"required,oneof=home category thread leaderboards back"`
	CategoryId string `json:"category_id"`
}

type SearchRequest struct {
	Query string `json:"query"`
}
