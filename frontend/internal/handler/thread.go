package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/frontend/internal/store"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/utils"
)

// GetThreads lists threads after the selected category and search query.
func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, api.ThreadsResponse{Threads: h.store.Snapshot().FilteredThreads()})
}

func (h *Handler) LoadThreads(w http.ResponseWriter, r *http.Request) {
	if !h.dispatch(w, r, store.LoadThreads{}) {
		return
	}
	h.GetThreads(w, r)
}

func (h *Handler) GetRecentThreads(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, h.public.RecentThreadsLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.WriteJSON(w, api.ThreadsResponse{Threads: h.store.Snapshot().RecentThreads(limit)})
}

func (h *Handler) GetPopularThreads(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, h.public.PopularThreadsLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.WriteJSON(w, api.ThreadsResponse{Threads: h.store.Snapshot().PopularThreads(limit)})
}

func (h *Handler) GetUnansweredThreads(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, api.ThreadsResponse{Threads: h.store.Snapshot().UnansweredThreads()})
}

func (h *Handler) GetUserThreads(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "userId")
	utils.WriteJSON(w, api.ThreadsResponse{Threads: h.store.Snapshot().ThreadsByAuthor(userId)})
}

// GetThread selects a thread and returns it in full.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	thread, err := h.store.LoadThreadDetail(r.Context(), store.LoadThreadDetail{ThreadId: threadId})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if thread == nil { // superseded by a newer selection
		h.fail(w, r, internal_errors.NotFoundf("thread %s", threadId))
		return
	}
	utils.WriteJSON(w, threadResponse(thread))
}

func (h *Handler) ClearSelectedThread(w http.ResponseWriter, r *http.Request) {
	if !h.dispatch(w, r, store.ClearSelectedThread{}) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	thread, err := h.store.CreateThread(store.CreateThread{Title: body.Title, Body: body.Body, Category: body.Category})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.WriteJSONStatus(w, http.StatusCreated, threadResponse(thread))
}

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCommentRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	post, err := h.store.AddReply(store.AddReply{ThreadId: chi.URLParam(r, "threadId"), Content: body.Content})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.WriteJSONStatus(w, http.StatusCreated, api.PostResponse{Post: post, Local: true, Notice: api.LocalNotice})
}

func (h *Handler) VotePost(w http.ResponseWriter, r *http.Request) {
	var body api.VoteRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	intent := store.VotePost{
		ThreadId: chi.URLParam(r, "threadId"),
		PostId:   chi.URLParam(r, "postId"),
		Vote:     domain.VoteType(body.VoteType),
	}
	if !h.dispatch(w, r, intent) {
		return
	}
	selected := h.store.Snapshot().Threads.Selected
	if selected == nil || selected.Id != intent.ThreadId {
		// the vote was accepted but the selection moved on
		h.fail(w, r, internal_errors.NotFoundf("thread %s", intent.ThreadId))
		return
	}
	_, post := selected.FindPost(intent.PostId)
	if post == nil {
		h.fail(w, r, internal_errors.NotFoundf("post %s", intent.PostId))
		return
	}
	utils.WriteJSON(w, api.PostResponse{Post: post})
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, api.CategoriesResponse{Categories: h.store.Snapshot().Threads.Categories})
}

func threadResponse(t *domain.Thread) api.ThreadResponse {
	resp := api.ThreadResponse{Thread: t, Local: t.Origin.IsLocal()}
	if resp.Local {
		resp.Notice = api.LocalNotice
	}
	return resp
}

func limitParam(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &internal_errors.ValidationError{Message: "limit must be a non-negative integer"}
	}
	return n, nil
}
