package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.store.Snapshot())
}

func (h *Handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	utils.WriteJSON(w, struct {
		store.UIState
		Category *domain.Category `json:"category"`
	}{snap.UI, snap.CurrentCategory()})
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var body api.NavigateRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := utils.Validate(body); err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.dispatch(w, r, navigationIntent(body)) {
		return
	}
	h.GetNavigation(w, r)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var body api.SearchRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.dispatch(w, r, store.SetSearchQuery{Query: body.Query}) {
		return
	}
	h.GetThreads(w, r)
}

func navigationIntent(req api.NavigateRequest) store.Intent {
	switch req.To {
	case "category":
		return store.NavigateToCategory{CategoryId: req.CategoryId}
	case "thread":
		return store.NavigateToThread{}
	case "leaderboards":
		return store.NavigateToLeaderboards{}
	case "back":
		return store.NavigateBack{}
	}
	return store.NavigateHome{}
}
