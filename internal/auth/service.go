package auth

import (
	"context"
	"fmt"

	"seatwise/internal/sessions"
	"seatwise/internal/users"
)

// Service resolves a username into an identity and opens a session for it.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, string, error)
}

type service struct {
	users users.Repository
	store sessions.Store
}

func NewService(userRepo users.Repository, store sessions.Store) Service {
	return &service{
		users: userRepo,
		store: store,
	}
}

// Login upserts the user record and creates a session. A first-time username
// is registered as a regular (non-admin) user; the admin flag always comes
// from the stored record.
func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, string, error) {
	user, err := s.users.FindOrCreateByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve user: %w", err)
	}

	token, err := s.store.Create(ctx, sessions.Session{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResponse{
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}, token, nil
}
