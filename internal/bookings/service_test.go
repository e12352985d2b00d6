package bookings

import (
	"context"
	"testing"

	"seatwise/internal/seatpool"
	"seatwise/internal/sessions"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestService(t *testing.T, totalSeats int) (Service, Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&seatpool.SeatPool{},
		&seatpool.Seat{},
		&Booking{},
		&BookingSeat{},
	))

	poolRepo := seatpool.NewRepository(db)
	_, err = poolRepo.CreatePool(context.Background(), totalSeats)
	require.NoError(t, err)

	repo := NewRepository(db)
	return NewService(repo, poolRepo, nil), repo, db
}

func seatState(t *testing.T, db *gorm.DB, block string) seatpool.Seat {
	t.Helper()
	var seat seatpool.Seat
	require.NoError(t, db.Where("block = ?", block).First(&seat).Error)
	return seat
}

func TestService_Book_ClaimsSeats(t *testing.T) {
	svc, _, db := setupTestService(t, 10)
	ctx := context.Background()

	booking, err := svc.Book(ctx, "alice", []string{"S1", "S2"})

	require.NoError(t, err)
	assert.Equal(t, "alice", booking.Username)
	assert.ElementsMatch(t, []string{"S1", "S2"}, booking.Blocks())

	seat := seatState(t, db, "S1")
	assert.True(t, seat.IsBooked)
	require.NotNil(t, seat.BookedBy)
	assert.Equal(t, "alice", *seat.BookedBy)
}

func TestService_Book_ConflictLeavesEverythingUnchanged(t *testing.T) {
	svc, repo, db := setupTestService(t, 10)
	ctx := context.Background()

	_, err := svc.Book(ctx, "alice", []string{"S1", "S2"})
	require.NoError(t, err)

	// Bob wants S2 and S3 but alice already holds S2. The attempt must not
	// claim S3 either.
	booking, err := svc.Book(ctx, "bob", []string{"S2", "S3"})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrSeatConflict)

	s2 := seatState(t, db, "S2")
	require.NotNil(t, s2.BookedBy)
	assert.Equal(t, "alice", *s2.BookedBy)

	s3 := seatState(t, db, "S3")
	assert.True(t, s3.IsFree())

	all, err := repo.GetAllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_Book_UnknownBlock(t *testing.T) {
	svc, _, _ := setupTestService(t, 5)

	booking, err := svc.Book(context.Background(), "alice", []string{"S1", "S99"})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestService_Book_EmptySelection(t *testing.T) {
	svc, _, _ := setupTestService(t, 5)

	booking, err := svc.Book(context.Background(), "alice", nil)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrNoSeatsSelected)
}

func TestService_Book_DeduplicatesBlocks(t *testing.T) {
	svc, _, _ := setupTestService(t, 5)

	booking, err := svc.Book(context.Background(), "alice", []string{"S1", "S1", "S2"})

	require.NoError(t, err)
	assert.Len(t, booking.Seats, 2)
}

func TestService_Cancel_ReleasesSubset(t *testing.T) {
	svc, repo, db := setupTestService(t, 10)
	ctx := context.Background()

	booking, err := svc.Book(ctx, "alice", []string{"S1", "S2"})
	require.NoError(t, err)

	updated, err := svc.Cancel(ctx, "alice", booking.ID, []string{"S1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S2"}, updated.Blocks())

	s1 := seatState(t, db, "S1")
	assert.True(t, s1.IsFree())
	assert.Nil(t, s1.BookedBy)

	s2 := seatState(t, db, "S2")
	assert.True(t, s2.IsBooked)

	// S1 is claimable again by someone else.
	_, err = svc.Book(ctx, "bob", []string{"S1"})
	require.NoError(t, err)

	all, err := repo.GetAllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_Cancel_RejectsNonOwner(t *testing.T) {
	svc, _, db := setupTestService(t, 10)
	ctx := context.Background()

	booking, err := svc.Book(ctx, "alice", []string{"S1"})
	require.NoError(t, err)

	updated, err := svc.Cancel(ctx, "bob", booking.ID, []string{"S1"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrNotOwner)

	s1 := seatState(t, db, "S1")
	assert.True(t, s1.IsBooked)
}

func TestService_Cancel_RejectsForeignBlocks(t *testing.T) {
	svc, _, db := setupTestService(t, 10)
	ctx := context.Background()

	booking, err := svc.Book(ctx, "alice", []string{"S1", "S2"})
	require.NoError(t, err)

	_, err = svc.Book(ctx, "bob", []string{"S3"})
	require.NoError(t, err)

	// S3 belongs to bob's booking, not this one. Nothing may change.
	updated, err := svc.Cancel(ctx, "alice", booking.ID, []string{"S1", "S3"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrInvalidCancellation)

	s1 := seatState(t, db, "S1")
	assert.True(t, s1.IsBooked)
	s3 := seatState(t, db, "S3")
	assert.True(t, s3.IsBooked)
}

func TestService_Cancel_UnknownBooking(t *testing.T) {
	svc, _, _ := setupTestService(t, 5)

	updated, err := svc.Cancel(context.Background(), "alice", uuid.New(), []string{"S1"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Dashboard_UserSeesPoolAndOwnBookings(t *testing.T) {
	svc, _, _ := setupTestService(t, 10)
	ctx := context.Background()

	_, err := svc.Book(ctx, "alice", []string{"S1"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, "bob", []string{"S2"})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(ctx, &sessions.Session{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "user", dashboard.Role)
	require.NotNil(t, dashboard.Pool)
	assert.Len(t, dashboard.Pool.Seats, 10)
	require.Len(t, dashboard.Bookings, 1)
	assert.Equal(t, "alice", dashboard.Bookings[0].Username)
}

func TestService_Dashboard_AdminSeesAllBookings(t *testing.T) {
	svc, _, _ := setupTestService(t, 10)
	ctx := context.Background()

	_, err := svc.Book(ctx, "alice", []string{"S1"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, "bob", []string{"S2"})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(ctx, &sessions.Session{Username: "admin", IsAdmin: true})

	require.NoError(t, err)
	assert.Equal(t, "admin", dashboard.Role)
	assert.Nil(t, dashboard.Pool)
	assert.Len(t, dashboard.Bookings, 2)
}
