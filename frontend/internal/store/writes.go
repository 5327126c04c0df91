package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/itchan-dev/forum/frontend/internal/transform"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/utils"
)

// CreateThread fabricates a thread on this client only. The Forum API does
// not accept writes from this credential tier, so the returned thread has a
// local origin and views must present it as such.
func (s *Store) CreateThread(in CreateThread) (*domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.state.currentUser()
	if author == nil {
		return nil, &internal_errors.AuthRequiredError{Action: "create a thread"}
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Category = transform.CategorySlug(in.Category)
	if err := utils.Validate(in); err != nil {
		return nil, err
	}
	body, ok := s.text.Render(in.Body)
	if !ok {
		return nil, &internal_errors.ValidationError{Message: "body is required"}
	}

	now := s.now()
	id := domain.LocalThreadPrefix + s.newId()
	thread := &domain.Thread{
		Id:         id,
		Origin:     domain.LocalOrigin(),
		Title:      in.Title,
		Author:     *author,
		CategoryId: in.Category,
		Posts: []*domain.Post{{
			Id:          id + "-initial",
			Author:      *author,
			Content:     body,
			Timestamp:   now,
			UpvotedBy:   []domain.UserId{},
			DownvotedBy: []domain.UserId{},
			IsLocal:     true,
		}},
		CreatedAt:      now,
		LastActivityAt: now,
	}

	threads := &s.state.Threads
	threads.Threads = append([]*domain.Thread{thread}, threads.Threads...)
	if !hasCategory(threads.Categories, in.Category) {
		threads.Categories = append(threads.Categories, transform.NewCategory(in.Category, len(threads.Categories)))
	}
	threads.Error = ""
	s.log.Info("local thread created", "thread", id, "category", in.Category)
	return thread.Clone(), nil
}

// AddReply appends a local post to the selected thread and mirrors the
// thread into the list collection.
func (s *Store) AddReply(in AddReply) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.state.currentUser()
	if author == nil {
		return nil, &internal_errors.AuthRequiredError{Action: "reply"}
	}
	if err := utils.Validate(in); err != nil {
		return nil, err
	}
	content, ok := s.text.Render(in.Content)
	if !ok {
		return nil, &internal_errors.ValidationError{Message: "content is required"}
	}
	thread := s.state.Threads.Selected
	if thread == nil || (in.ThreadId != "" && in.ThreadId != thread.Id) {
		err := internal_errors.NotFoundf("selected thread %s", in.ThreadId)
		s.state.Threads.Error = err.Error()
		return nil, err
	}

	now := s.now()
	post := &domain.Post{
		Id:          domain.LocalReplyPrefix + s.newId(),
		Author:      *author,
		Content:     content,
		Timestamp:   now,
		UpvotedBy:   []domain.UserId{},
		DownvotedBy: []domain.UserId{},
		IsLocal:     true,
	}
	thread.Posts = append(thread.Posts, post)
	thread.LastActivityAt = now
	mirrorThread(s.state.Threads.Threads, thread)
	s.state.Threads.Error = ""
	return post.Clone(), nil
}

// VotePost toggles the vote of the current user on a post of the selected
// thread. Remote posts change only after the Forum API accepts the vote.
func (s *Store) VotePost(ctx context.Context, in VotePost) error {
	s.mu.Lock()
	user := s.state.currentUser()
	if user == nil {
		s.mu.Unlock()
		return &internal_errors.AuthRequiredError{Action: "vote"}
	}
	if err := utils.Validate(in); err != nil {
		s.mu.Unlock()
		return err
	}
	thread := s.state.Threads.Selected
	if thread == nil || thread.Id != in.ThreadId {
		err := internal_errors.NotFoundf("thread %s", in.ThreadId)
		s.state.Threads.Error = err.Error()
		s.mu.Unlock()
		return err
	}
	idx, post := thread.FindPost(in.PostId)
	if post == nil || post.IsPlaceholder {
		err := internal_errors.NotFoundf("post %s", in.PostId)
		s.state.Threads.Error = err.Error()
		s.mu.Unlock()
		return err
	}

	userId := user.Id
	token := s.state.Auth.Session.Token
	remote := !thread.Origin.IsLocal() && !post.IsLocal
	gen := s.gen.detail
	s.mu.Unlock()

	if remote {
		var err error
		if idx == 0 {
			err = s.api.VoteThread(ctx, token, in.ThreadId, in.Vote)
		} else {
			err = s.api.VoteComment(ctx, token, in.ThreadId, in.PostId, in.Vote)
		}
		if err != nil {
			s.mu.Lock()
			s.state.Threads.Error = err.Error()
			s.mu.Unlock()
			return fmt.Errorf("vote on %s: %w", in.PostId, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.detail {
		// The selection changed while the vote was in flight. The Forum API
		// has the vote; the next detail load will show it.
		s.log.Debug("vote confirmed for a thread no longer selected", "thread", in.ThreadId)
		return nil
	}
	if current := s.state.currentUser(); current == nil || current.Id != userId {
		// The session changed hands; the vote belongs to the previous user.
		s.log.Debug("vote confirmed for a user no longer signed in", "thread", in.ThreadId, "user", userId)
		return nil
	}
	_, post = s.state.Threads.Selected.FindPost(in.PostId)
	post.ApplyVote(userId, in.Vote)
	mirrorVotes(s.state.Threads.Threads, in.ThreadId, post)
	s.state.Threads.Error = ""
	return nil
}

func hasCategory(categories []domain.Category, id domain.CategoryId) bool {
	for _, c := range categories {
		if c.Id == id {
			return true
		}
	}
	return false
}
