package accessrequests

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("access request not found")

// Repository interface defines the contract for access request data access
type Repository interface {
	CreateRequest(ctx context.Context, request *AccessRequest) error
	OldestPending(ctx context.Context, username string) (*AccessRequest, error)
	MarkGranted(ctx context.Context, request *AccessRequest) error
	ListRequests(ctx context.Context) ([]AccessRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRequest(ctx context.Context, request *AccessRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create access request: %w", err)
	}
	return nil
}

// OldestPending returns the earliest unanswered request for the user, so
// replies resolve requests in the order they arrived.
func (r *repository) OldestPending(ctx context.Context, username string) (*AccessRequest, error) {
	var request AccessRequest
	err := r.db.WithContext(ctx).
		Where("username = ? AND status = ?", username, StatusPending).
		Order("created_at ASC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}
	return &request, nil
}

func (r *repository) MarkGranted(ctx context.Context, request *AccessRequest) error {
	result := r.db.WithContext(ctx).
		Model(&AccessRequest{}).
		Where("id = ? AND status = ?", request.ID, StatusPending).
		Update("status", StatusGranted)
	if result.Error != nil {
		return fmt.Errorf("failed to update access request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	request.Status = StatusGranted
	return nil
}

func (r *repository) ListRequests(ctx context.Context) ([]AccessRequest, error) {
	var requests []AccessRequest
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}
	return requests, nil
}
