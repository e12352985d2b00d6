package users

import (
	"context"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&User{}))

	return db
}

func TestService_AddUser(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	user, err := svc.AddUser(ctx, &AddUserRequest{Username: "charlie"})

	require.NoError(t, err)
	assert.Equal(t, "charlie", user.Username)
	assert.False(t, user.IsAdmin)
	assert.NotEmpty(t, user.ID)
}

func TestService_AddUser_DuplicateUsername(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := svc.AddUser(ctx, &AddUserRequest{Username: "charlie"})
	require.NoError(t, err)

	user, err := svc.AddUser(ctx, &AddUserRequest{Username: "charlie"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_AddUser_AdminFlag(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	user, err := svc.AddUser(context.Background(), &AddUserRequest{Username: "ops", IsAdmin: true})

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestService_ListUsers(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		_, err := svc.AddUser(ctx, &AddUserRequest{Username: name})
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRepository_FindOrCreateByUsername(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.FindOrCreateByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, first.IsAdmin)

	// A repeat login returns the same record, not a new one.
	second, err := repo.FindOrCreateByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRepository_FindOrCreateByUsername_KeepsAdminFlag(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &User{Username: "admin", IsAdmin: true}))

	// Logging in must not demote the stored admin flag.
	user, err := repo.FindOrCreateByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}
