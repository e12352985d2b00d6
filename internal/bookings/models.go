package bookings

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a user's claim on one or more seat blocks. Seats are removed on
// partial cancellation; the booking row itself persists even when emptied, so
// the ledger keeps a trace of every successful booking.
type Booking struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Seats []BookingSeat `json:"seats" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// BookingSeat ties one claimed block to its booking.
type BookingSeat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `json:"booking_id" gorm:"type:uuid;index;not null"`
	Block     string    `json:"block" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns the ID in Go so the model works on every dialect
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (s *BookingSeat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingSeat
func (BookingSeat) TableName() string {
	return "booking_seats"
}

// Blocks returns the block identifiers currently held by the booking.
func (b *Booking) Blocks() []string {
	blocks := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		blocks = append(blocks, seat.Block)
	}
	return blocks
}

// HoldsAll reports whether every given block belongs to the booking.
func (b *Booking) HoldsAll(blocks []string) bool {
	held := make(map[string]bool, len(b.Seats))
	for _, seat := range b.Seats {
		held[seat.Block] = true
	}
	for _, block := range blocks {
		if !held[block] {
			return false
		}
	}
	return true
}
