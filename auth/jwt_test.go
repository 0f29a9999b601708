package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSignAndParseToken(t *testing.T) {
	userID := uuid.NewString()

	token, err := SignToken(testSecret, userID, "owner", TokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner", claims.Type)
	assert.Equal(t, userID, claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, uuid.NewString(), "user", TokenTTL)
	require.NoError(t, err)

	_, err = ParseAndValidate("another-secret", token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := SignToken(testSecret, uuid.NewString(), "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAndValidate(testSecret, token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseAndValidate(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
