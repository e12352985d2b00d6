package seatpool

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeatPool is the singleton record enumerating every reservable seat. It is
// recreated wholesale on an admin resize.
type SeatPool struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TotalSeats int       `json:"total_seats" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Seats []Seat `json:"seats" gorm:"foreignKey:PoolID;constraint:OnDelete:CASCADE;"`
}

// Seat is a single reservable unit. Invariant: BookedBy is set iff IsBooked
// is true.
type Seat struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PoolID   uuid.UUID `json:"pool_id" gorm:"type:uuid;index;not null;uniqueIndex:idx_pool_block"`
	Block    string    `json:"block" gorm:"not null;uniqueIndex:idx_pool_block"`
	Position int       `json:"position" gorm:"not null"` // numeric order of the block, for stable listing
	IsBooked bool      `json:"is_booked" gorm:"not null;default:false"`
	BookedBy *string   `json:"booked_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the ID in Go so the model works on every dialect
func (p *SeatPool) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (s *Seat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName sets the table name for SeatPool
func (SeatPool) TableName() string {
	return "seat_pools"
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// IsFree reports whether the seat can still be claimed.
func (s *Seat) IsFree() bool {
	return !s.IsBooked
}

// NewPool builds a pool of totalSeats sequential blocks S1..SN, all free.
func NewPool(totalSeats int) *SeatPool {
	pool := &SeatPool{
		ID:         uuid.New(),
		TotalSeats: totalSeats,
	}
	for i := 1; i <= totalSeats; i++ {
		pool.Seats = append(pool.Seats, Seat{
			PoolID:   pool.ID,
			Block:    fmt.Sprintf("S%d", i),
			Position: i,
		})
	}
	return pool
}
