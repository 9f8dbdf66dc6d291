package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))

		log.Info("hello", logger.Component("test"))

		assert.Contains(t, buf.String(), `"msg":"hello"`)
		assert.Contains(t, buf.String(), `"component":"test"`)
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("production preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("sessionkit"), logger.WithOutput(&buf))

		log.Debug("dropped")
		log.Info("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), `"app":"sessionkit"`)
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.SessionID(""))
	assert.Equal(t, "session_id", logger.SessionID("abc").Key)
	assert.Equal(t, slog.Attr{}, logger.Key("anything", nil))
	assert.Equal(t, "chunk_count", logger.ChunkCount(3).Key)
}
