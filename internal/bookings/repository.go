package bookings

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/seatpool"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSeatConflict    = errors.New("some selected seats are already booked")
)

type Repository interface {
	// Concurrency-safe booking creation
	CreateBookingWithSeatClaim(ctx context.Context, booking *Booking) error

	// Booking retrieval
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetBookingsByUsername(ctx context.Context, username string) ([]Booking, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)

	// Cancellation
	ReleaseSeats(ctx context.Context, bookingID uuid.UUID, blocks []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithSeatClaim claims the booking's blocks and records the
// booking in one transaction. The claim is a single conditional update that
// only touches free seats; when fewer rows change than blocks were requested
// at least one seat was taken, and the whole transaction rolls back. That
// count check is what makes two overlapping booking attempts safe: only one
// of them can flip a given seat from free to booked.
func (r *repository) CreateBookingWithSeatClaim(ctx context.Context, booking *Booking) error {
	blocks := booking.Blocks()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&seatpool.Seat{}).
			Where("block IN ? AND is_booked = ?", blocks, false).
			Updates(map[string]interface{}{
				"is_booked": true,
				"booked_by": booking.Username,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to claim seats: %w", result.Error)
		}

		if result.RowsAffected != int64(len(blocks)) {
			return ErrSeatConflict
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetBookingsByUsername(ctx context.Context, username string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetAllBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ReleaseSeats frees the given blocks in the pool and removes them from the
// booking, in one transaction. The booking row stays even when its last seat
// is released.
func (r *repository) ReleaseSeats(ctx context.Context, bookingID uuid.UUID, blocks []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&seatpool.Seat{}).
			Where("block IN ?", blocks).
			Updates(map[string]interface{}{
				"is_booked": false,
				"booked_by": nil,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to release seats: %w", err)
		}

		err = tx.Where("booking_id = ? AND block IN ?", bookingID, blocks).
			Delete(&BookingSeat{}).Error
		if err != nil {
			return fmt.Errorf("failed to shrink booking: %w", err)
		}

		return nil
	})
}
