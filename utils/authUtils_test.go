package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.NoError(t, ComparePasswords(hash, "secret123"))
	assert.Error(t, ComparePasswords(hash, "secret124"))

	otherHash, err := HashPassword("secret123")
	require.NoError(t, err)
	// bcrypt salts, so equal passwords never share a hash
	assert.NotEqual(t, hash, otherHash)
	assert.NoError(t, ComparePasswords(otherHash, "secret123"))
}

func TestCreateAndVerifyToken(t *testing.T) {
	signingKey := bytes.Repeat([]byte("s"), 32)
	token, err := CreateToken("alice", "a@x.com", signingKey, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token.TokenString)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	claims, err := VerifyToken(token.TokenString, signingKey)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims[CLAIM_USERNAME])
	assert.Equal(t, "a@x.com", claims[CLAIM_EMAIL])
}

func TestVerifyTokenExpired(t *testing.T) {
	signingKey := bytes.Repeat([]byte("s"), 32)
	token, err := CreateToken("alice", "a@x.com", signingKey, -2*time.Second)
	require.NoError(t, err)

	_, err = VerifyToken(token.TokenString, signingKey)
	require.Error(t, err)
	assert.True(t, IsTokenExpired(err))
}

func TestVerifyTokenWrongKey(t *testing.T) {
	signingKey := bytes.Repeat([]byte("s"), 32)
	otherKey := bytes.Repeat([]byte("x"), 32)
	token, err := CreateToken("alice", "a@x.com", signingKey, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token.TokenString, otherKey)
	require.Error(t, err)
	assert.False(t, IsTokenExpired(err))
}

func TestVerifyTokenGarbage(t *testing.T) {
	signingKey := bytes.Repeat([]byte("s"), 32)
	_, err := VerifyToken("not-a-token", signingKey)
	assert.Error(t, err)
}

func TestCreateTokenWithoutKey(t *testing.T) {
	_, err := CreateToken("alice", "a@x.com", nil, time.Hour)
	assert.Error(t, err)
}

func TestGetVerificationCode(t *testing.T) {
	code := GetVerificationCode()
	assert.NotEmpty(t, code)
}
