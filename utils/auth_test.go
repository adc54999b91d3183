package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Str0ngpass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngpass", hash)

	assert.True(t, CheckPassword("Str0ngpass", hash))
	assert.False(t, CheckPassword("wrongpass1A", hash))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateSessionToken(42, "merchant1@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateSessionTokenRejectsBadSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateSessionToken(7, "merchant1@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ValidateSessionToken("not-a-jwt")
	assert.Error(t, err)
}

func TestGenerateOTPFormat(t *testing.T) {
	otpPattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, otpPattern, GenerateOTP())
	}
}

func TestGenerateAPIToken(t *testing.T) {
	a := GenerateAPIToken()
	b := GenerateAPIToken()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
