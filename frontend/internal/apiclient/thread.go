package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

// === Thread Methods ===

func (c *APIClient) GetThreads(ctx context.Context) ([]api.Thread, error) {
	data, err := call[api.ThreadsData](ctx, c, "list_threads", http.MethodGet, "/threads", nil, "")
	if err != nil {
		return nil, err
	}
	return data.Threads, nil
}

func (c *APIClient) GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (api.ThreadDetail, error) {
	path := fmt.Sprintf("/threads/%s", url.PathEscape(threadId))
	data, err := call[api.ThreadDetailData](ctx, c, "thread_detail", http.MethodGet, path, nil, "")
	if err != nil {
		return api.ThreadDetail{}, err
	}
	return data.DetailThread, nil
}

func (c *APIClient) CreateThread(ctx context.Context, token string, req api.CreateThreadRequest) (api.Thread, error) {
	data, err := call[api.ThreadData](ctx, c, "create_thread", http.MethodPost, "/threads", req, token)
	if err != nil {
		return api.Thread{}, err
	}
	return data.Thread, nil
}

func (c *APIClient) CreateComment(ctx context.Context, token string, threadId domain.ThreadId, req api.CreateCommentRequest) (api.Comment, error) {
	path := fmt.Sprintf("/threads/%s/comments", url.PathEscape(threadId))
	data, err := call[api.CommentData](ctx, c, "create_comment", http.MethodPost, path, req, token)
	if err != nil {
		return api.Comment{}, err
	}
	return data.Comment, nil
}

// === Vote Methods ===

func (c *APIClient) VoteThread(ctx context.Context, token string, threadId domain.ThreadId, vote domain.VoteType) error {
	path := fmt.Sprintf("/threads/%s/%s-vote", url.PathEscape(threadId), vote)
	_, err := call[api.VoteData](ctx, c, "vote_thread_"+string(vote), http.MethodPost, path, nil, token)
	return err
}

func (c *APIClient) VoteComment(ctx context.Context, token string, threadId domain.ThreadId, commentId domain.PostId, vote domain.VoteType) error {
	path := fmt.Sprintf("/threads/%s/comments/%s/%s-vote", url.PathEscape(threadId), url.PathEscape(commentId), vote)
	_, err := call[api.VoteData](ctx, c, "vote_comment_"+string(vote), http.MethodPost, path, nil, token)
	return err
}
