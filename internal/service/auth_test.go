package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
)

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAuthService(store, new(MockTokenManager))

		store.users.On("GetByEmail", ctx, "new@test.com").Return(nil, domain.ErrNotFound)
		store.users.On("GetByUsername", ctx, "newbie").Return(nil, domain.ErrNotFound)
		store.users.On("GetDefaultRole", ctx).Return(&domain.Role{ID: 1, Name: "User", Default: true, Permissions: 7}, nil)
		store.users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Signup(ctx, "new@test.com", "newbie", "secret-password", "New User", "Zhengzhou")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.RoleID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
	})

	t.Run("Email in use", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAuthService(store, new(MockTokenManager))

		store.users.On("GetByEmail", ctx, "new@test.com").Return(plainUser(5), nil)

		user, err := svc.Signup(ctx, "new@test.com", "newbie", "secret-password", "", "")
		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
		assert.Nil(t, user)
	})

	t.Run("Username in use", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAuthService(store, new(MockTokenManager))

		store.users.On("GetByEmail", ctx, "new@test.com").Return(nil, domain.ErrNotFound)
		store.users.On("GetByUsername", ctx, "newbie").Return(plainUser(5), nil)

		user, err := svc.Signup(ctx, "new@test.com", "newbie", "secret-password", "", "")
		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	account := &domain.User{ID: 1, Email: "user@test.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		store := NewMockStore()
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(store, tokens)

		store.users.On("GetByEmail", ctx, "user@test.com").Return(account, nil)
		tokens.On("GenerateAccessToken", int32(1), "user@test.com").Return("access-token", nil)
		tokens.On("GenerateRefreshToken", int32(1), "user@test.com").Return("refresh-token", nil)

		access, refresh, err := svc.Login(ctx, "user@test.com", "secret-password")
		assert.NoError(t, err)
		assert.Equal(t, "access-token", access)
		assert.Equal(t, "refresh-token", refresh)
	})

	t.Run("Wrong password", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAuthService(store, new(MockTokenManager))

		store.users.On("GetByEmail", ctx, "user@test.com").Return(account, nil)

		_, _, err := svc.Login(ctx, "user@test.com", "not-it")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAuthService(store, new(MockTokenManager))

		store.users.On("GetByEmail", ctx, "ghost@test.com").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost@test.com", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := NewMockStore()
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(store, tokens)

		tokens.On("ValidateToken", "old-refresh").Return(&security.UserClaims{
			UserID: 1, Email: "user@test.com", Type: security.TokenTypeRefresh,
		}, nil)
		store.users.On("GetByID", ctx, int32(1)).Return(plainUser(1), nil)
		tokens.On("GenerateAccessToken", int32(1), "user@test.com").Return("new-access", nil)
		tokens.On("GenerateRefreshToken", int32(1), "user@test.com").Return("new-refresh", nil)

		access, refresh, err := svc.Refresh(ctx, "old-refresh")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", access)
		assert.Equal(t, "new-refresh", refresh)
	})

	t.Run("Access token refused", func(t *testing.T) {
		store := NewMockStore()
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(store, tokens)

		tokens.On("ValidateToken", "an-access-token").Return(&security.UserClaims{
			UserID: 1, Type: security.TokenTypeAccess,
		}, nil)

		_, _, err := svc.Refresh(ctx, "an-access-token")
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
