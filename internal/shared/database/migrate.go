package database

import (
	"seatwise/internal/accessrequests"
	"seatwise/internal/bookings"
	"seatwise/internal/payments"
	"seatwise/internal/seatpool"
	"seatwise/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&seatpool.SeatPool{},
		&seatpool.Seat{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
		&accessrequests.AccessRequest{},
		&payments.Payment{},
	)
}
