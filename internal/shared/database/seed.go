package database

import (
	"context"
	"fmt"
	"log"

	"seatwise/internal/seatpool"
	"seatwise/internal/shared/config"
	"seatwise/internal/users"

	"gorm.io/gorm"
)

// Seed provisions the initial admin account and the seat pool. It is
// idempotent so every startup can call it safely.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(ctx, db, cfg.Seed.AdminUsername); err != nil {
		return err
	}
	return seedSeatPool(ctx, db, cfg.Seed.TotalSeats)
}

func seedAdmin(ctx context.Context, db *gorm.DB, username string) error {
	userRepo := users.NewRepository(db)

	exists, err := userRepo.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		return nil
	}

	admin := &users.User{
		Username: username,
		IsAdmin:  true,
	}
	if err := userRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("✅ Seeded admin user %q", username)
	return nil
}

func seedSeatPool(ctx context.Context, db *gorm.DB, totalSeats int) error {
	poolRepo := seatpool.NewRepository(db)

	exists, err := poolRepo.PoolExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check seat pool: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := poolRepo.CreatePool(ctx, totalSeats); err != nil {
		return fmt.Errorf("failed to seed seat pool: %w", err)
	}

	log.Printf("✅ Seeded seat pool with %d seats", totalSeats)
	return nil
}
