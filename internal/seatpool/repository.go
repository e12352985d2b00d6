package seatpool

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrPoolNotFound = errors.New("seat pool not found")

type Repository interface {
	// Pool lifecycle
	GetPool(ctx context.Context) (*SeatPool, error)
	PoolExists(ctx context.Context) (bool, error)
	CreatePool(ctx context.Context, totalSeats int) (*SeatPool, error)
	ReplacePool(ctx context.Context, totalSeats int) (*SeatPool, error)

	// Admin reset
	ResetPool(ctx context.Context) error

	// Seat lookups
	GetSeatsByBlocks(ctx context.Context, blocks []string) ([]Seat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetPool(ctx context.Context) (*SeatPool, error) {
	var pool SeatPool
	err := r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&pool).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}
	return &pool, nil
}

func (r *repository) PoolExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SeatPool{}).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CreatePool(ctx context.Context, totalSeats int) (*SeatPool, error) {
	pool := NewPool(totalSeats)
	if err := r.db.WithContext(ctx).Create(pool).Error; err != nil {
		return nil, err
	}
	return pool, nil
}

// ReplacePool destroys the current pool and every booking tied to it, then
// creates a fresh pool. Bookings are cascade-invalidated in the same
// transaction so no booking can reference a block that no longer exists.
func (r *repository) ReplacePool(ctx context.Context, totalSeats int) (*SeatPool, error) {
	pool := NewPool(totalSeats)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteAllBookings(tx); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM seats").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM seat_pools").Error; err != nil {
			return err
		}
		return tx.Create(pool).Error
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}

// ResetPool frees every seat in place and deletes all bookings.
func (r *repository) ResetPool(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Seat{}).
			Where("is_booked = ?", true).
			Updates(map[string]interface{}{
				"is_booked": false,
				"booked_by": nil,
			}).Error
		if err != nil {
			return err
		}
		return deleteAllBookings(tx)
	})
}

func (r *repository) GetSeatsByBlocks(ctx context.Context, blocks []string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("block IN ?", blocks).
		Order("position ASC").
		Find(&seats).Error
	return seats, err
}

// deleteAllBookings clears the booking ledger and its children. The booking
// tables are owned by the bookings package; raw table access here avoids an
// import cycle, mirroring how cross-domain transactional writes are done
// elsewhere in the codebase.
func deleteAllBookings(tx *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM payments",
		"DELETE FROM booking_seats",
		"DELETE FROM bookings",
	} {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
