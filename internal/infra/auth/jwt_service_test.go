package auth

import (
	"testing"
	"time"

	"tube/config"
	domainerrors "tube/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret
	cfg.Env.ServiceName = "tube"

	return cfg
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret, time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "tube", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret, 0))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret, time.Hour))
	require.NoError(t, err)

	now := time.Now()
	validClaims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{
			name: "expired",
			token: signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   uuid.New().String(),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
		},
		{
			name:  "wrong secret",
			token: signClaims(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims),
		},
		{
			name:  "wrong algorithm",
			token: signClaims(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims),
		},
		{
			name:  "unsigned",
			token: signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims),
		},
		{
			name: "missing expiry",
			token: signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject: uuid.New().String(),
			}),
		},
		{
			name: "subject is not a uuid",
			token: signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   "ls",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
			assert.Equal(t, domainerrors.KindInvalidToken, domainerrors.KindOf(err))
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
