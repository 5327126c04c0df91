package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// Store is the client state as seen by the view surface.
type Store interface {
	Dispatch(ctx context.Context, intent store.Intent) error
	Snapshot() store.State
	LoadThreadDetail(ctx context.Context, in store.LoadThreadDetail) (*domain.Thread, error)
	CreateThread(in store.CreateThread) (*domain.Thread, error)
	AddReply(in store.AddReply) (*domain.Post, error)
}

type Handler struct {
	store  Store
	public config.Public
	log    *slog.Logger
}

func New(st Store, public config.Public) *Handler {
	return &Handler{store: st, public: public, log: logger.For("handler")}
}

// dispatch runs intent and writes the error, if any. It reports whether the
// caller should go on writing a response.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, intent store.Intent) bool {
	if err := h.store.Dispatch(r.Context(), intent); err != nil {
		h.fail(w, r, err)
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Debug("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	utils.WriteErrorAndStatusCode(w, err)
}
