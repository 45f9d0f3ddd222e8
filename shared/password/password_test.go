package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/shared/password"
)

func TestHash(t *testing.T) {
	t.Run("hashes a valid password", func(t *testing.T) {
		hash, err := password.Hash("correct-horse-battery")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "correct-horse-battery", hash)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		_, err := password.Hash("")

		assert.Error(t, err)
	})

	t.Run("produces a different hash per call", func(t *testing.T) {
		first, err := password.Hash("correct-horse-battery")
		require.NoError(t, err)

		second, err := password.Hash("correct-horse-battery")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse-battery")
	require.NoError(t, err)

	t.Run("accepts the matching password", func(t *testing.T) {
		assert.NoError(t, password.Verify("correct-horse-battery", hash))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		assert.ErrorIs(t, password.Verify("wrong-password", hash), password.ErrInvalidPassword)
	})

	t.Run("rejects empty inputs", func(t *testing.T) {
		assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.Verify("correct-horse-battery", ""), password.ErrInvalidPassword)
	})
}
