package apiclient

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
)

func (c *APIClient) GetUsers(ctx context.Context) ([]api.User, error) {
	data, err := call[api.UsersData](ctx, c, "list_users", http.MethodGet, "/users", nil, "")
	if err != nil {
		return nil, err
	}
	return data.Users, nil
}

func (c *APIClient) GetLeaderboards(ctx context.Context) ([]api.LeaderboardEntry, error) {
	data, err := call[api.LeaderboardsData](ctx, c, "leaderboards", http.MethodGet, "/leaderboards", nil, "")
	if err != nil {
		return nil, err
	}
	return data.Leaderboards, nil
}
