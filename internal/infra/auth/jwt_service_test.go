package auth

import (
	"testing"
	"time"

	"natours/config"
	domainerrors "natours/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenExpiresIn: ttl}}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
	assert.Equal(t, time.Hour, svc.TokenDuration())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	claims, err := svc.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(func() *config.Config {
		cfg := newTestConfig(time.Hour)
		cfg.SecretKey.Access = "another-secret"

		return cfg
	}())
	require.NoError(t, err)
	foreign, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "other secret", token: foreign},
		{name: "unsigned", token: noneToken},
		{name: "subject is not an id", token: badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)

	require.NoError(t, err)
	assert.Equal(t, 90*24*time.Hour, svc.TokenDuration())
}
