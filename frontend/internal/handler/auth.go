package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.dispatch(w, r, store.Login{LoginRequest: body}) {
		return
	}
	h.Session(w, r)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.dispatch(w, r, store.Register{RegisterRequest: body}) {
		return
	}
	utils.WriteJSONStatus(w, http.StatusCreated, h.session())
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if !h.dispatch(w, r, store.Logout{}) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.session())
}

func (h *Handler) ClearAuthError(w http.ResponseWriter, r *http.Request) {
	if !h.dispatch(w, r, store.ClearAuthError{}) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session() api.SessionResponse {
	auth := h.store.Snapshot().Auth
	return api.SessionResponse{Session: auth.Session, Error: auth.Error}
}
