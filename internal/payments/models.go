package payments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusCompleted PaymentStatus = "COMPLETED"
	StatusFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	BookingID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"booking_id"`
	Username      string        `gorm:"not null;index" json:"username"`
	Amount        float64       `gorm:"not null;default:0" json:"amount"`
	Currency      string        `gorm:"not null;default:'USD'" json:"currency"`
	Status        PaymentStatus `gorm:"not null;default:'PENDING'" json:"status"`
	Method        string        `gorm:"not null" json:"method"`
	TransactionID string        `gorm:"uniqueIndex" json:"transaction_id"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Payment) TableName() string {
	return "payments"
}
