package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/crypto"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-portfolio-test"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	cfg := config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer, TokenDuration: time.Hour}

	svc := NewAuthService(users, hasher, cfg, logger.Nop()).(*authService)
	return svc, users, hasher
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	stored := models.User{ID: "u-1", Email: "jane@example.com", PasswordHash: "hash", Role: models.RoleAdmin}

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(stored, nil),
		hasher.EXPECT().Compare("hash", "secret").Return(nil),
		users.EXPECT().UpdateLastLogin(ctx, "u-1", fixed).Return(nil),
	)

	user, err := svc.Login(ctx, models.Credentials{Email: "  jane@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, fixed, *user.LastLogin)
}

func TestAuthService_Login_LastLoginFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{ID: "u-1", PasswordHash: "hash"}, nil)
	hasher.EXPECT().Compare("hash", "secret").Return(nil)
	users.EXPECT().UpdateLastLogin(ctx, "u-1", gomock.Any()).Return(errors.New("db down"))

	user, err := svc.Login(ctx, models.Credentials{Email: "jane@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Nil(t, user.LastLogin)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
	}{
		{
			name: "unknown email",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(models.User{}, store.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(models.User{ID: "u-1", PasswordHash: "hash"}, nil)
				hasher.EXPECT().Compare("hash", "wrong").Return(crypto.ErrPasswordMismatch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(users, hasher)

			_, err := svc.Login(context.Background(), models.Credentials{Email: "jane@example.com", Password: "wrong"})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	dbErr := errors.New("connection refused")

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u-42"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-42", parsed.UserID)
	assert.Equal(t, testIssuer, parsed.Issuer)
	require.NotNil(t, parsed.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt.Time, time.Minute)
}

func TestAuthService_CreateToken_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func signTestToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuthService_ParseToken_Failures(t *testing.T) {
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "u-1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	foreign := valid
	foreign.Issuer = "someone-else"
	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", signTestToken(t, jwt.SigningMethodHS256, []byte(testSignKey), expired), ErrTokenIsExpired},
		{"wrong key", signTestToken(t, jwt.SigningMethodHS256, []byte("other-key"), valid), ErrTokenIsInvalid},
		{"wrong issuer", signTestToken(t, jwt.SigningMethodHS256, []byte(testSignKey), foreign), ErrTokenIsInvalid},
		{"wrong algorithm", signTestToken(t, jwt.SigningMethodHS512, []byte(testSignKey), valid), ErrTokenIsInvalid},
		{"no expiry", signTestToken(t, jwt.SigningMethodHS256, []byte(testSignKey), noExpiry), ErrTokenIsInvalid},
		{"garbage", "not.a.jwt", ErrTokenIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_GetPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{
		ID: "u-1", Name: "Jane", Email: "jane@example.com", Role: models.RoleAdmin, PasswordHash: "hash",
	}, nil)
	users.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrUserNotFound)

	principal, err := svc.GetPrincipal(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, models.Principal{ID: "u-1", Name: "Jane", Email: "jane@example.com", Role: models.RoleAdmin}, principal)

	_, err = svc.GetPrincipal(ctx, "gone")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}
