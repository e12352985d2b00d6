package accessrequests

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	StatusPending RequestStatus = "pending"
	StatusGranted RequestStatus = "granted"
)

func (s RequestStatus) IsValid() bool {
	return s == StatusPending || s == StatusGranted
}

// AccessRequest is a user's plea for elevated access, answered later through
// the reply endpoint. Timestamp is the client-supplied marker and is stored
// verbatim.
type AccessRequest struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Username  string        `gorm:"not null;index" json:"username"`
	Timestamp string        `gorm:"not null" json:"timestamp"`
	Status    RequestStatus `gorm:"not null;default:'pending';index" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (a *AccessRequest) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (AccessRequest) TableName() string {
	return "access_requests"
}
