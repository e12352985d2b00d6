package seatpool

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidPoolSize = errors.New("pool size must be at least 1")

// Service exposes the seat pool to the rest of the application.
type Service interface {
	GetPool(ctx context.Context) (*SeatPool, error)
	Reset(ctx context.Context) error
	Resize(ctx context.Context, totalSeats int) (*SeatPool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetPool(ctx context.Context) (*SeatPool, error) {
	return s.repo.GetPool(ctx)
}

// Reset frees every seat and wipes the booking ledger. Irreversible.
func (s *service) Reset(ctx context.Context) error {
	if err := s.repo.ResetPool(ctx); err != nil {
		return fmt.Errorf("failed to reset seat pool: %w", err)
	}
	return nil
}

// Resize replaces the pool with a fresh one of totalSeats blocks S1..SN.
// Existing bookings are invalidated rather than left dangling.
func (s *service) Resize(ctx context.Context, totalSeats int) (*SeatPool, error) {
	if totalSeats < 1 {
		return nil, ErrInvalidPoolSize
	}

	pool, err := s.repo.ReplacePool(ctx, totalSeats)
	if err != nil {
		return nil, fmt.Errorf("failed to resize seat pool: %w", err)
	}
	return pool, nil
}
