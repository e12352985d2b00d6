package payments

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/bookings"
	"seatwise/internal/sessions"

	"github.com/google/uuid"
)

var ErrNotBookingOwner = errors.New("booking does not belong to user")

// BookingReader is the slice of the bookings package the payment flow needs.
type BookingReader interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*bookings.Booking, error)
}

// Service interface defines the contract for payment business logic
type Service interface {
	Pay(ctx context.Context, sess *sessions.Session, bookingID uuid.UUID, req *PayRequest) (*Payment, error)
	GetPaymentsForBooking(ctx context.Context, sess *sessions.Session, bookingID uuid.UUID) (*bookings.Booking, []Payment, error)
}

type service struct {
	repo      Repository
	booking   BookingReader
	processor Processor
}

func NewService(repo Repository, booking BookingReader, processor Processor) Service {
	return &service{
		repo:      repo,
		booking:   booking,
		processor: processor,
	}
}

// Pay records a placeholder payment against the booking. Only the booking
// owner or an administrator may pay. The attempt is persisted as PENDING
// before the charge, then updated with the outcome, so a failed charge still
// leaves an auditable record and a retry shows up as a separate attempt.
func (s *service) Pay(ctx context.Context, sess *sessions.Session, bookingID uuid.UUID, req *PayRequest) (*Payment, error) {
	booking, err := s.booking.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Username != sess.Username && !sess.IsAdmin {
		return nil, ErrNotBookingOwner
	}

	method := req.Method
	if method == "" {
		method = "card"
	}

	payment := &Payment{
		ID:        uuid.New(),
		BookingID: booking.ID,
		Username:  booking.Username,
		Amount:    0,
		Currency:  "USD",
		Status:    StatusPending,
		Method:    method,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.processor.Charge(ctx, payment); err != nil {
		payment.Status = StatusFailed
		if saveErr := s.repo.UpdatePayment(ctx, payment); saveErr != nil {
			return nil, fmt.Errorf("failed to record failed payment: %w", saveErr)
		}
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPaymentsForBooking returns the booking together with its payment
// history, gated the same way as Pay.
func (s *service) GetPaymentsForBooking(ctx context.Context, sess *sessions.Session, bookingID uuid.UUID) (*bookings.Booking, []Payment, error) {
	booking, err := s.booking.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}

	if booking.Username != sess.Username && !sess.IsAdmin {
		return nil, nil, ErrNotBookingOwner
	}

	payments, err := s.repo.GetPaymentsByBookingID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}

	return booking, payments, nil
}
