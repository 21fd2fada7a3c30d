package user

import (
	"context"
	"testing"
	"time"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coremocks "wallet/mocks/port/core"
	persistencemocks "wallet/mocks/port/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Balance == entity.Money(0) && u.CheckPassword("secret123")
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		service := NewService(mockRepo, mockTime, mockLogger)

		u, err := service.Register(ctx, "alice", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, entity.Money(0), u.Balance)
	})

	t.Run("Username is trimmed before storage", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "bob"
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		service := NewService(mockRepo, mockTime, mockLogger)

		u, err := service.Register(ctx, "  bob  ", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "bob", u.Username)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUsername).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		service := NewService(mockRepo, mockTime, mockLogger)

		u, err := service.Register(ctx, "alice", "secret123")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("Invalid username never reaches storage", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockRepo, mockTime, mockLogger)

		u, err := service.Register(ctx, "a!", "secret123")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Short password rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockRepo, mockTime, mockLogger)

		u, err := service.Register(ctx, "alice", "short")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	newStoredUser := func(t *testing.T, username, password string) *entity.User {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()
		u, err := entity.NewUser(username, password, mockTime)
		require.NoError(t, err)
		u.ID = 1
		return u
	}

	t.Run("Successful authentication", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := newStoredUser(t, "alice", "secret123")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil).Once()

		service := NewService(mockRepo, mockTime, mockLogger)

		u, err := service.Authenticate(ctx, "alice", "secret123")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), u.ID)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockRepo, mockTime, mockLogger)

		_, err := service.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		_, err = service.Authenticate(ctx, "alice", "")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		mockRepo.AssertNotCalled(t, "GetByUsername")
	})

	t.Run("Unknown username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		service := NewService(mockRepo, mockTime, mockLogger)

		_, err := service.Authenticate(ctx, "ghost", "secret123")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := newStoredUser(t, "alice", "secret123")
		mockRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		service := NewService(mockRepo, mockTime, mockLogger)

		_, err := service.Authenticate(ctx, "alice", "wrong-password")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
