package users

import (
	"context"
	"errors"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// Service handles the admin-facing user directory operations.
type Service interface {
	AddUser(ctx context.Context, req *AddUserRequest) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddUser creates a user explicitly. Unlike the login path this fails when
// the name is taken instead of returning the existing record.
func (s *service) AddUser(ctx context.Context, req *AddUserRequest) (*User, error) {
	exists, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	user := &User{
		Username: req.Username,
		IsAdmin:  req.IsAdmin,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}
