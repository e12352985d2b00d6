package database

import (
	"context"
	"testing"

	"seatwise/internal/seatpool"
	"seatwise/internal/shared/config"
	"seatwise/internal/users"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func seedConfig() *config.Config {
	return &config.Config{
		Seed: config.SeedConfig{
			AdminUsername: "admin",
			TotalSeats:    10,
		},
	}
}

func TestSeed_ProvisionsAdminAndPool(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, db, seedConfig()))

	admin, err := users.NewRepository(db).GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	pool, err := seatpool.NewRepository(db).GetPool(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, pool.TotalSeats)
	assert.Len(t, pool.Seats, 10)
}

func TestSeed_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, db, seedConfig()))
	require.NoError(t, Seed(ctx, db, seedConfig()))

	var userCount int64
	require.NoError(t, db.Model(&users.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)

	var poolCount int64
	require.NoError(t, db.Model(&seatpool.SeatPool{}).Count(&poolCount).Error)
	assert.EqualValues(t, 1, poolCount)
}

func TestSeed_DoesNotShrinkExistingPool(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	poolRepo := seatpool.NewRepository(db)
	_, err := poolRepo.CreatePool(ctx, 25)
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, db, seedConfig()))

	pool, err := poolRepo.GetPool(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, pool.TotalSeats)
}
