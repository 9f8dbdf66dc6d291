package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/codec"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{
			"user":    "alice",
			"active":  true,
			"score":   42.5,
			"missing": nil,
			"tags":    []any{"admin", "beta"},
			"prefs":   map[string]any{"theme": "dark", "lang": "en"},
		}

		b, err := codec.Encode(data)
		require.NoError(t, err)

		decoded, err := codec.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	})

	t.Run("empty mapping", func(t *testing.T) {
		t.Parallel()

		b, err := codec.Encode(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, []byte("{}"), b)

		decoded, err := codec.Decode(b)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("deterministic output", func(t *testing.T) {
		t.Parallel()

		data := map[string]any{"b": "2", "a": "1", "c": map[string]any{"z": true, "y": false}}

		first, err := codec.Encode(data)
		require.NoError(t, err)

		for range 10 {
			again, err := codec.Encode(data)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("unserializable value", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Encode(map[string]any{"ch": make(chan int)})
		assert.Error(t, err)
	})
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range [][]byte{
		nil,
		{},
		[]byte("not json"),
		[]byte(`{"truncated":`),
		[]byte(`[1,2,3]`),
		{0xFF, 0xFE, 0x00},
	} {
		_, err := codec.Decode(input)
		assert.ErrorIs(t, err, codec.ErrMalformedPayload, "input=%q", input)
	}
}
