package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, api.UsersResponse{Users: h.store.Snapshot().Users.Users})
}

func (h *Handler) LoadUsers(w http.ResponseWriter, r *http.Request) {
	if !h.dispatch(w, r, store.LoadUsers{}) {
		return
	}
	h.GetUsers(w, r)
}

// GetLeaderboard returns entries by score, highest first.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, api.LeaderboardResponse{Entries: h.store.Snapshot().RankedLeaderboard()})
}

func (h *Handler) LoadLeaderboard(w http.ResponseWriter, r *http.Request) {
	if !h.dispatch(w, r, store.LoadLeaderboard{}) {
		return
	}
	h.GetLeaderboard(w, r)
}
