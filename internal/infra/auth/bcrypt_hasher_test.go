package auth

import (
	"strings"
	"testing"

	"tube/config"
	"tube/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, hasher.Check("123456", hash))
	assert.False(t, hasher.Check("1234567", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_CheckRejectsGarbageDigest(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("123456", ""))
	assert.False(t, hasher.Check("123456", "e10adc3949ba59abbe56e057f20f883e"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: newTestHasherConfig(bcrypt.MinCost + 1), want: bcrypt.MinCost + 1},
		{name: "too low", cfg: newTestHasherConfig(1), want: bcrypt.DefaultCost},
		{name: "too high", cfg: newTestHasherConfig(bcrypt.MaxCost + 1), want: bcrypt.DefaultCost},
		{name: "nil auth", cfg: &config.Config{}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_HashUsesCost(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_PasswordLengthLimit(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("a", service.MaxPasswordBytes+1))
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)

	// 36 two-byte runes are 72 bytes; one more rune is over the limit.
	hash, err := hasher.Hash(strings.Repeat("é", 36))
	require.NoError(t, err)
	assert.True(t, hasher.Check(strings.Repeat("é", 36), hash))

	_, err = hasher.Hash(strings.Repeat("é", 37))
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)
}
