package accessrequests

import (
	"context"
	"testing"

	"seatwise/internal/sessions"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRepo(t *testing.T) Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&AccessRequest{}))

	return NewRepository(db)
}

func TestService_Request_RecordsPending(t *testing.T) {
	svc := NewService(setupTestRepo(t), AllowAnyAuthenticated(), nil)

	request, err := svc.Request(context.Background(), "alice", "2026-08-27T10:00:00Z")

	require.NoError(t, err)
	assert.Equal(t, StatusPending, request.Status)
	assert.Equal(t, "alice", request.Username)
	assert.Equal(t, "2026-08-27T10:00:00Z", request.Timestamp)
}

func TestService_Reply_GrantsOldestPending(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewService(repo, AllowAnyAuthenticated(), nil)
	ctx := context.Background()

	first, err := svc.Request(ctx, "alice", "t1")
	require.NoError(t, err)
	second, err := svc.Request(ctx, "alice", "t2")
	require.NoError(t, err)

	granted, err := svc.Reply(ctx, &sessions.Session{Username: "bob"}, "alice")

	require.NoError(t, err)
	assert.Equal(t, first.ID, granted.ID)
	assert.Equal(t, StatusGranted, granted.Status)

	// The newer request is still pending.
	pending, err := repo.OldestPending(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, second.ID, pending.ID)
}

func TestService_Reply_NoPendingRequest(t *testing.T) {
	svc := NewService(setupTestRepo(t), AllowAnyAuthenticated(), nil)

	granted, err := svc.Reply(context.Background(), &sessions.Session{Username: "bob"}, "alice")

	assert.Nil(t, granted)
	assert.ErrorIs(t, err, ErrNoPendingRequest)
}

func TestService_Reply_AdminOnlyPolicy(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewService(repo, AdminOnly(), nil)
	ctx := context.Background()

	_, err := svc.Request(ctx, "alice", "t1")
	require.NoError(t, err)

	granted, err := svc.Reply(ctx, &sessions.Session{Username: "bob"}, "alice")
	assert.Nil(t, granted)
	assert.ErrorIs(t, err, ErrReplyForbidden)

	granted, err = svc.Reply(ctx, &sessions.Session{Username: "admin", IsAdmin: true}, "alice")
	require.NoError(t, err)
	assert.Equal(t, StatusGranted, granted.Status)
}

func TestPolicyFromName(t *testing.T) {
	assert.Equal(t, "admin", PolicyFromName("admin").Name())
	assert.Equal(t, "any", PolicyFromName("any").Name())
	assert.Equal(t, "any", PolicyFromName("").Name())
}

func TestRequestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusGranted.IsValid())
	assert.False(t, RequestStatus("denied").IsValid())
}
