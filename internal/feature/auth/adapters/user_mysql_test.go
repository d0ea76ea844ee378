package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/usecase"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError maps SQLite unique violations onto gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Email:    "test@example.com",
			Name:     "Test User",
			Password: "hashed_password",
			Role:     role.User,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Email: "duplicate@example.com", Password: "password1", Role: role.User}
		require.NoError(t, repo.Create(context.Background(), user1))

		user2 := &entity.User{Email: "duplicate@example.com", Password: "password2", Role: role.User}
		err := repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		seed := &entity.User{Email: "find@example.com", Password: "hash", Role: role.Admin}
		require.NoError(t, repo.Create(context.Background(), seed))

		got, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, seed.ID, got.ID)
		assert.Equal(t, role.Admin, got.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		seed := &entity.User{Email: "byid@example.com", Password: "hash", Role: role.User}
		require.NoError(t, repo.Create(context.Background(), seed))

		got, err := repo.FindByID(context.Background(), seed.ID)

		require.NoError(t, err)
		assert.Equal(t, seed.Email, got.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
