package payments

import (
	"context"
	"errors"
	"testing"

	"seatwise/internal/bookings"
	"seatwise/internal/sessions"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubBookingReader struct {
	booking *bookings.Booking
}

func (s *stubBookingReader) GetBooking(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	if s.booking == nil || s.booking.ID != id {
		return nil, bookings.ErrBookingNotFound
	}
	return s.booking, nil
}

// failingProcessor simulates a declined charge.
type failingProcessor struct{}

func (p *failingProcessor) Charge(ctx context.Context, payment *Payment) error {
	return errors.New("charge declined")
}

func setupTestService(t *testing.T, reader BookingReader) (Service, Repository) {
	t.Helper()
	return setupTestServiceWithProcessor(t, reader, NewMockProcessor())
}

func setupTestServiceWithProcessor(t *testing.T, reader BookingReader, processor Processor) (Service, Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Payment{}))

	repo := NewRepository(db)
	return NewService(repo, reader, processor), repo
}

func aliceBooking() *bookings.Booking {
	return &bookings.Booking{
		ID:       uuid.New(),
		Username: "alice",
		Seats:    []bookings.BookingSeat{{Block: "S1"}},
	}
}

func TestService_Pay_CompletesPlaceholderPayment(t *testing.T) {
	booking := aliceBooking()
	svc, _ := setupTestService(t, &stubBookingReader{booking: booking})

	sess := &sessions.Session{Username: "alice"}
	payment, err := svc.Pay(context.Background(), sess, booking.ID, &PayRequest{})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, payment.Status)
	assert.Zero(t, payment.Amount)
	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, "card", payment.Method)
	assert.NotEmpty(t, payment.TransactionID)
	require.NotNil(t, payment.ProcessedAt)
}

func TestService_Pay_RejectsNonOwner(t *testing.T) {
	booking := aliceBooking()
	svc, _ := setupTestService(t, &stubBookingReader{booking: booking})

	sess := &sessions.Session{Username: "bob"}
	payment, err := svc.Pay(context.Background(), sess, booking.ID, &PayRequest{})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestService_Pay_AdminMayPayForAnyone(t *testing.T) {
	booking := aliceBooking()
	svc, _ := setupTestService(t, &stubBookingReader{booking: booking})

	sess := &sessions.Session{Username: "admin", IsAdmin: true}
	payment, err := svc.Pay(context.Background(), sess, booking.ID, &PayRequest{Method: "cash"})

	require.NoError(t, err)
	// The payment is recorded against the booking owner, not the payer.
	assert.Equal(t, "alice", payment.Username)
	assert.Equal(t, "cash", payment.Method)
}

func TestService_Pay_UnknownBooking(t *testing.T) {
	svc, _ := setupTestService(t, &stubBookingReader{})

	sess := &sessions.Session{Username: "alice"}
	payment, err := svc.Pay(context.Background(), sess, uuid.New(), &PayRequest{})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestService_Pay_FailedChargeLeavesRecord(t *testing.T) {
	booking := aliceBooking()
	svc, repo := setupTestServiceWithProcessor(t, &stubBookingReader{booking: booking}, &failingProcessor{})
	ctx := context.Background()

	sess := &sessions.Session{Username: "alice"}
	payment, err := svc.Pay(ctx, sess, booking.ID, &PayRequest{})

	assert.Nil(t, payment)
	require.Error(t, err)

	// The attempt must survive the declined charge as a FAILED row.
	stored, err := repo.GetPaymentsByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, StatusFailed, stored[0].Status)

	got, err := repo.GetPaymentByID(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
}

func TestService_Pay_RetryAfterFailureSucceeds(t *testing.T) {
	booking := aliceBooking()
	svc, repo := setupTestServiceWithProcessor(t, &stubBookingReader{booking: booking}, &failingProcessor{})
	ctx := context.Background()
	sess := &sessions.Session{Username: "alice"}

	_, err := svc.Pay(ctx, sess, booking.ID, &PayRequest{})
	require.Error(t, err)

	retried := NewService(repo, &stubBookingReader{booking: booking}, NewMockProcessor())
	payment, err := retried.Pay(ctx, sess, booking.ID, &PayRequest{})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, payment.Status)

	// Both attempts are kept as separate records.
	stored, err := repo.GetPaymentsByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
}

func TestService_GetPaymentsForBooking(t *testing.T) {
	booking := aliceBooking()
	svc, _ := setupTestService(t, &stubBookingReader{booking: booking})
	ctx := context.Background()

	sess := &sessions.Session{Username: "alice"}
	_, err := svc.Pay(ctx, sess, booking.ID, &PayRequest{})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, sess, booking.ID, &PayRequest{})
	require.NoError(t, err)

	got, payments, err := svc.GetPaymentsForBooking(ctx, sess, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
	assert.Len(t, payments, 2)

	_, _, err = svc.GetPaymentsForBooking(ctx, &sessions.Session{Username: "bob"}, booking.ID)
	assert.ErrorIs(t, err, ErrNotBookingOwner)
}
