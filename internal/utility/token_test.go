package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotask_backend/internal/common"
)

const testSecret = "unit-test-secret"

func TestCreateAndParseToken(t *testing.T) {
	signed, err := CreateToken(testSecret, "64f1c2d3e4a5b6c7d8e9f0a1", "admin@example.com", "admin", time.Hour)
	require.NoError(t, err, "signing a token should succeed")
	require.NotEmpty(t, signed)

	claims, err := ParseToken(testSecret, signed)
	require.NoError(t, err, "a freshly signed token should parse")
	assert.Equal(t, "64f1c2d3e4a5b6c7d8e9f0a1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	signed, err := CreateToken(testSecret, "u1", "u@example.com", "customer", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", signed)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestParseTokenExpired(t *testing.T) {
	signed, err := CreateToken(testSecret, "u1", "u@example.com", "customer", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}
