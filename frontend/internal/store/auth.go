package store

import (
	"context"

	"github.com/itchan-dev/forum/frontend/internal/transform"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/utils"
)

// HydrateSession restores the session from the persisted token. Any failure
// leaves the client logged out and removes the token; it is not reported as
// an error.
func (s *Store) HydrateSession(ctx context.Context) error {
	gen := s.beginAuth(false)

	token, err := s.tokens.Get()
	if err != nil {
		s.finishAuth(gen, func(st *State) {})
		return nil
	}

	if jwt.Expired(token, s.now()) {
		s.log.Info("stored token expired, discarding")
		s.finishAuth(gen, func(st *State) { s.dropToken() })
		return nil
	}

	profile, err := s.api.GetOwnProfile(ctx, token)
	if err != nil {
		s.log.Info("session restore failed", "error", err)
		s.finishAuth(gen, func(st *State) { s.dropToken() })
		return nil
	}

	s.finishAuth(gen, func(st *State) { setSession(st, token, profile) })
	return nil
}

func (s *Store) Login(ctx context.Context, in Login) error {
	if err := utils.Validate(in.LoginRequest); err != nil {
		return err
	}
	gen := s.beginAuth(true)

	token, profile, err := s.authenticate(ctx, in.LoginRequest)
	if err != nil {
		s.finishAuth(gen, func(st *State) { st.Auth.Error = err.Error() })
		return err
	}
	s.finishAuth(gen, func(st *State) { s.startSession(st, token, profile) })
	return nil
}

// Register creates the account and then logs in with the same credentials.
func (s *Store) Register(ctx context.Context, in Register) error {
	if err := utils.Validate(in.RegisterRequest); err != nil {
		return err
	}
	gen := s.beginAuth(true)

	token, profile, err := s.register(ctx, in.RegisterRequest)
	if err != nil {
		s.finishAuth(gen, func(st *State) { st.Auth.Error = err.Error() })
		return err
	}
	s.finishAuth(gen, func(st *State) { s.startSession(st, token, profile) })
	return nil
}

func (s *Store) register(ctx context.Context, req api.RegisterRequest) (string, api.User, error) {
	if _, err := s.api.Register(ctx, req); err != nil {
		return "", api.User{}, err
	}
	return s.authenticate(ctx, api.LoginRequest{Email: req.Email, Password: req.Password})
}

// authenticate logs in and fetches the profile.
func (s *Store) authenticate(ctx context.Context, req api.LoginRequest) (string, api.User, error) {
	token, err := s.api.Login(ctx, req)
	if err != nil {
		return "", api.User{}, err
	}
	profile, err := s.api.GetOwnProfile(ctx, token)
	if err != nil {
		return "", api.User{}, err
	}
	return token, profile, nil
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.auth++
	s.state.Auth = AuthState{}
	s.dropToken()
}

func (s *Store) beginAuth(clearError bool) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.auth++
	s.state.Auth.Loading = true
	if clearError {
		s.state.Auth.Error = ""
	}
	return s.gen.auth
}

func (s *Store) finishAuth(gen uint64, reduce func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.auth {
		s.log.Debug("dropping stale auth completion")
		return
	}
	s.state.Auth.Loading = false
	reduce(&s.state)
}

func (s *Store) dropToken() {
	if err := s.tokens.Delete(); err != nil {
		s.log.Warn("failed to remove token", "error", err)
	}
}

// startSession sets the session and persists its token. Called under the
// lock so that token writes are serialized with logout.
func (s *Store) startSession(st *State, token string, profile api.User) {
	setSession(st, token, profile)
	if err := s.tokens.Set(token); err != nil {
		s.log.Warn("failed to persist token", "error", err)
	}
}

func setSession(st *State, token string, profile api.User) {
	user := transform.User(profile)
	st.Auth.Session = domain.Session{
		Token:         token,
		CurrentUser:   &user,
		Authenticated: true,
	}
	st.Auth.Error = ""
}

// currentUser returns the acting user, or nil without a usable session.
func (st State) currentUser() *domain.User {
	sess := st.Auth.Session
	if !sess.Authenticated || sess.Token == "" || sess.CurrentUser == nil {
		return nil
	}
	return sess.CurrentUser
}
