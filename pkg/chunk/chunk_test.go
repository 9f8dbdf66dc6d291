package chunk_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/chunk"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	t.Run("exact multiple of chunk size", func(t *testing.T) {
		t.Parallel()

		b := bytes.Repeat([]byte("a"), 64)
		pieces := chunk.Split(b, 16)

		require.Len(t, pieces, 4)
		for _, p := range pieces {
			assert.Len(t, p, 16)
		}
	})

	t.Run("short last piece", func(t *testing.T) {
		t.Parallel()

		b := bytes.Repeat([]byte("a"), 40)
		pieces := chunk.Split(b, 16)

		require.Len(t, pieces, 3)
		assert.Len(t, pieces[0], 16)
		assert.Len(t, pieces[1], 16)
		assert.Len(t, pieces[2], 8)
	})

	t.Run("blob smaller than chunk size", func(t *testing.T) {
		t.Parallel()

		pieces := chunk.Split([]byte("small"), 4096)
		require.Len(t, pieces, 1)
		assert.Equal(t, []byte("small"), pieces[0])
	})

	t.Run("empty blob", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, chunk.Split(nil, 16))
		assert.Nil(t, chunk.Split([]byte{}, 16))
	})

	t.Run("invalid chunk size", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, chunk.Split([]byte("data"), 0))
		assert.Nil(t, chunk.Split([]byte("data"), -1))
	})
}

func TestJoin(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()

		joined := chunk.Join([][]byte{[]byte("ab"), []byte("cd"), []byte("e")})
		assert.Equal(t, []byte("abcde"), joined)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, chunk.Join(nil))
		assert.Empty(t, chunk.Join([][]byte{}))
	})
}

func TestSplitJoinRoundTrip(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 7, 16, 100, 4096}
	lengths := []int{1, 15, 16, 17, 1000, 8192}

	for _, size := range sizes {
		for _, length := range lengths {
			b := make([]byte, length)
			_, err := rand.Read(b)
			require.NoError(t, err)

			pieces := chunk.Split(b, size)

			expected := (length + size - 1) / size
			require.Len(t, pieces, expected, "length=%d size=%d", length, size)
			for _, p := range pieces {
				require.LessOrEqual(t, len(p), size)
			}

			assert.Equal(t, b, chunk.Join(pieces))
		}
	}
}
