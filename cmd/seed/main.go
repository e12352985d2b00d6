package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"seatwise/internal/bookings"
	"seatwise/internal/seatpool"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"
	"seatwise/internal/users"

	"github.com/google/uuid"
)

type Seeder struct {
	db  *database.DB
	cfg *config.Config
}

func main() {
	fmt.Println("🌱 Starting Seatwise Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, cfg: cfg}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting
// foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payments",
		"booking_seats",
		"bookings",
		"access_requests",
		"seats",
		"seat_pools",
		"users",
	}

	pg := s.db.GetPostgreSQL()
	for _, table := range tables {
		if err := pg.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return nil
}

// SeedAll provisions the admin account, a few demo users, the seat pool and
// one demo booking.
func (s *Seeder) SeedAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg := s.db.GetPostgreSQL()

	if err := database.Seed(ctx, pg, s.cfg); err != nil {
		return err
	}

	userRepo := users.NewRepository(pg)
	demoUsers := []string{"alice", "bob", "charlie"}
	for _, username := range demoUsers {
		if _, err := userRepo.FindOrCreateByUsername(ctx, username); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", username, err)
		}
	}
	fmt.Printf("  👤 Seeded %d demo users\n", len(demoUsers))

	poolRepo := seatpool.NewRepository(pg)
	pool, err := poolRepo.GetPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seat pool: %w", err)
	}
	fmt.Printf("  💺 Seat pool ready with %d seats\n", pool.TotalSeats)

	bookingRepo := bookings.NewRepository(pg)
	demo := &bookings.Booking{
		ID:       uuid.New(),
		Username: "alice",
		Seats: []bookings.BookingSeat{
			{Block: "S1"},
			{Block: "S2"},
		},
	}
	if err := bookingRepo.CreateBookingWithSeatClaim(ctx, demo); err != nil {
		return fmt.Errorf("failed to seed demo booking: %w", err)
	}
	fmt.Printf("  🎟️  Seeded demo booking %s for alice\n", demo.ID)

	return nil
}
