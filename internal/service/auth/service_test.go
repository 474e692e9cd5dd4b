package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/auth"
	mock_auth "github.com/gajipro/gajipro-backend-go/internal/domain/auth/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	mock_user "github.com/gajipro/gajipro-backend-go/internal/domain/user/mock"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type authFixture struct {
	userRepo  *mock_user.MockUserRepository
	tokenRepo *mock_auth.MockRefreshTokenRepository
	jwt       jwt.Service
	service   auth.AuthService
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	f := authFixture{
		userRepo:  mock_user.NewMockUserRepository(ctrl),
		tokenRepo: mock_auth.NewMockRefreshTokenRepository(ctrl),
		jwt:       jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp),
	}
	f.service = NewAuthService(f.userRepo, f.tokenRepo, f.jwt)
	return f
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	session := auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"}
	req := auth.RegisterRequest{
		Username:        "budi",
		Password:        "rahasia",
		ConfirmPassword: "rahasia",
		FullName:        "Budi Santoso",
	}

	t.Run("creates a worker and issues tokens", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().ExistsByUsername(ctx, "budi", nil).Return(false, nil)
		f.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u user.User) (user.User, error) {
			assert.Equal(t, user.RoleWorker, u.Role)
			assert.Equal(t, "Budi Santoso", u.FullName)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia")))
			u.ID = "worker-1"
			return u, nil
		})
		f.tokenRepo.EXPECT().CreateRefreshToken(ctx, "worker-1", gomock.Any(), gomock.Any(), session).Return(nil)

		resp, err := f.service.Register(ctx, req, session)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "karyawan", resp.Role)
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().ExistsByUsername(ctx, "budi", nil).Return(true, nil)

		_, err := f.service.Register(ctx, req, session)
		assert.ErrorIs(t, err, user.ErrDuplicateUsername)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	session := auth.SessionTrackingRequest{}
	owner := user.User{ID: "owner-1", Username: "bos", PasswordHash: hashed(t, "bos123"), Role: user.RoleOwner}

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().GetByUsername(ctx, "bos").Return(owner, nil)
		f.tokenRepo.EXPECT().CreateRefreshToken(ctx, "owner-1", gomock.Any(), gomock.Any(), session).Return(nil)

		resp, err := f.service.Login(ctx, auth.LoginRequest{Username: "bos", Password: "bos123"}, session)
		require.NoError(t, err)
		assert.Equal(t, "bos", resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().GetByUsername(ctx, "bos").Return(owner, nil)

		_, err := f.service.Login(ctx, auth.LoginRequest{Username: "bos", Password: "salah"}, session)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().GetByUsername(ctx, "siapa").Return(user.User{}, user.ErrUserNotFound)

		_, err := f.service.Login(ctx, auth.LoginRequest{Username: "siapa", Password: "x"}, session)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("store failure is not masked", func(t *testing.T) {
		f := newAuthFixture(t)
		storeErr := errors.New("connection refused")

		f.userRepo.EXPECT().GetByUsername(ctx, "bos").Return(user.User{}, storeErr)

		_, err := f.service.Login(ctx, auth.LoginRequest{Username: "bos", Password: "bos123"}, session)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new access token", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, _, err := f.jwt.GenerateRefreshToken("worker-1")
		require.NoError(t, err)

		f.tokenRepo.EXPECT().IsRefreshTokenRevoked(ctx, refresh).Return(false, nil)
		f.userRepo.EXPECT().GetByID(ctx, "worker-1").Return(user.User{ID: "worker-1", Username: "budi", Role: user.RoleWorker}, nil)

		resp, err := f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, _, err := f.jwt.GenerateRefreshToken("worker-1")
		require.NoError(t, err)

		f.tokenRepo.EXPECT().IsRefreshTokenRevoked(ctx, refresh).Return(true, nil)

		_, err = f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, err := f.jwt.GenerateAccessToken("worker-1", "budi", user.RoleWorker)
		require.NoError(t, err)

		_, err = f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: access})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	refresh, _, err := f.jwt.GenerateRefreshToken("worker-1")
	require.NoError(t, err)

	f.tokenRepo.EXPECT().IsRefreshTokenRevoked(ctx, refresh).Return(false, nil)
	f.tokenRepo.EXPECT().RevokeRefreshToken(ctx, refresh).Return(nil)

	require.NoError(t, f.service.Logout(ctx, refresh))
	assert.True(t, f.jwt.IsTokenRevoked(refresh))
}
