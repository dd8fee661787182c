package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherRoundtrip(t *testing.T) {
	cipher, err := NewCipher(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	for _, plaintext := range []string{"", "+15551234567", "héllo wörld"} {
		encrypted, err := cipher.Encrypt(plaintext)
		require.NoError(t, err)
		decrypted, err := cipher.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipherNonceUniqueness(t *testing.T) {
	cipher, err := NewCipher(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	first, err := cipher.Encrypt("same input")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCipherRejectsTampering(t *testing.T) {
	cipher, err := NewCipher(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt("sensitive")
	require.NoError(t, err)

	_, err = cipher.Decrypt("AAAA" + encrypted[4:])
	assert.Error(t, err)
	_, err = cipher.Decrypt("not base64!!!")
	assert.Error(t, err)
	_, err = cipher.Decrypt("")
	assert.Error(t, err)
}

func TestNewCipherRejectsBadKeys(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	assert.Error(t, err)
	_, err = NewCipher(nil)
	assert.Error(t, err)
}
