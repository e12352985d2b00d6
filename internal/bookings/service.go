package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"seatwise/internal/notifications"
	"seatwise/internal/seatpool"
	"seatwise/internal/sessions"
	"seatwise/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrNoSeatsSelected     = errors.New("no seats selected")
	ErrUnknownSeat         = errors.New("unknown seat block")
	ErrNotOwner            = errors.New("booking does not belong to user")
	ErrInvalidCancellation = errors.New("seats are not part of the booking")
)

// SeatPoolReader is the slice of the seat pool the booking flow needs. It is
// an interface so tests can substitute the pool.
type SeatPoolReader interface {
	GetPool(ctx context.Context) (*seatpool.SeatPool, error)
	GetSeatsByBlocks(ctx context.Context, blocks []string) ([]seatpool.Seat, error)
}

// Service interface defines the contract for booking business logic
type Service interface {
	Book(ctx context.Context, username string, blocks []string) (*Booking, error)
	Cancel(ctx context.Context, username string, bookingID uuid.UUID, blocks []string) (*Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	Dashboard(ctx context.Context, sess *sessions.Session) (*DashboardResponse, error)
}

type service struct {
	repo     Repository
	pool     SeatPoolReader
	notifier notifications.Producer
}

// NewService creates a new booking service instance. notifier may be nil
// when notifications are disabled.
func NewService(repo Repository, pool SeatPoolReader, notifier notifications.Producer) Service {
	return &service{
		repo:     repo,
		pool:     pool,
		notifier: notifier,
	}
}

// Book claims the requested blocks for the user. The request fails as a
// whole when any block is unknown or already booked; a partial booking is
// never created.
func (s *service) Book(ctx context.Context, username string, blocks []string) (*Booking, error) {
	blocks = dedupe(blocks)
	if len(blocks) == 0 {
		return nil, ErrNoSeatsSelected
	}

	// Unknown blocks would fail the claim's count check anyway, but checking
	// here lets the caller distinguish a typo from a conflict.
	seats, err := s.pool.GetSeatsByBlocks(ctx, blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to look up seats: %w", err)
	}
	if len(seats) != len(blocks) {
		return nil, ErrUnknownSeat
	}

	booking := &Booking{
		ID:       uuid.New(),
		Username: username,
	}
	for _, block := range blocks {
		booking.Seats = append(booking.Seats, BookingSeat{Block: block})
	}

	if err := s.repo.CreateBookingWithSeatClaim(ctx, booking); err != nil {
		return nil, err
	}

	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), username, blocks)
	s.publish(ctx, notifications.EventBookingConfirmed, username, booking.ID.String(), blocks)

	return booking, nil
}

// Cancel releases a subset of the user's booking. Only the owner may cancel,
// and every requested block must belong to the booking or nothing changes.
func (s *service) Cancel(ctx context.Context, username string, bookingID uuid.UUID, blocks []string) (*Booking, error) {
	blocks = dedupe(blocks)
	if len(blocks) == 0 {
		return nil, ErrNoSeatsSelected
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Username != username {
		return nil, ErrNotOwner
	}

	if !booking.HoldsAll(blocks) {
		return nil, ErrInvalidCancellation
	}

	if err := s.repo.ReleaseSeats(ctx, bookingID, blocks); err != nil {
		return nil, err
	}

	logger.GetDefault().LogBookingCancelled(ctx, bookingID.String(), username, blocks)
	s.publish(ctx, notifications.EventBookingCancelled, username, bookingID.String(), blocks)

	return s.repo.GetBookingByID(ctx, bookingID)
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

// Dashboard assembles the role-specific view: administrators see every
// booking, regular users see the seat pool plus only their own bookings.
func (s *service) Dashboard(ctx context.Context, sess *sessions.Session) (*DashboardResponse, error) {
	if sess.IsAdmin {
		all, err := s.repo.GetAllBookings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookings: %w", err)
		}
		return &DashboardResponse{Role: "admin", Bookings: all}, nil
	}

	pool, err := s.pool.GetPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat pool: %w", err)
	}

	own, err := s.repo.GetBookingsByUsername(ctx, sess.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	poolResp := pool.ToResponse()
	return &DashboardResponse{
		Role:     "user",
		Pool:     &poolResp,
		Bookings: own,
	}, nil
}

// publish sends a notification best-effort; a broker outage never fails the
// booking itself.
func (s *service) publish(ctx context.Context, eventType notifications.EventType, username, bookingID string, blocks []string) {
	if s.notifier == nil {
		return
	}

	event := notifications.NewEvent(eventType, username)
	event.BookingID = bookingID
	event.Seats = blocks

	if err := s.notifier.Publish(ctx, event); err != nil {
		logger.GetDefault().Warn("failed to publish booking notification",
			slog.String("type", string(eventType)),
			slog.String("booking_id", bookingID),
			slog.Any("error", err),
		)
	}
}

func dedupe(blocks []string) []string {
	seen := make(map[string]bool, len(blocks))
	var out []string
	for _, block := range blocks {
		if block == "" || seen[block] {
			continue
		}
		seen[block] = true
		out = append(out, block)
	}
	return out
}
