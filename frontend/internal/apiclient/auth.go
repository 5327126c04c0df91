package apiclient

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
)

func (c *APIClient) Register(ctx context.Context, req api.RegisterRequest) (api.User, error) {
	data, err := call[api.UserData](ctx, c, "register", http.MethodPost, "/register", req, "")
	if err != nil {
		return api.User{}, err
	}
	return data.User, nil
}

// Login exchanges credentials for a bearer token.
func (c *APIClient) Login(ctx context.Context, req api.LoginRequest) (string, error) {
	data, err := call[api.TokenData](ctx, c, "login", http.MethodPost, "/login", req, "")
	if err != nil {
		return "", err
	}
	return data.Token, nil
}

func (c *APIClient) GetOwnProfile(ctx context.Context, token string) (api.User, error) {
	data, err := call[api.UserData](ctx, c, "own_profile", http.MethodGet, "/users/me", nil, token)
	if err != nil {
		return api.User{}, err
	}
	return data.User, nil
}
