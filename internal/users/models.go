package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account in the directory. Users are created lazily on first
// login or explicitly by an administrator, and are never deleted.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the ID in Go so the model works on every dialect
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}
