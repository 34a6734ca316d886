package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(NewWithWriter(&buf, "debug"))
	ctx := context.Background()

	t.Run("ErrorIsLogged", func(t *testing.T) {
		buf.Reset()
		l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
		assert.Contains(t, buf.String(), "query gagal")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("RecordNotFoundIsQuiet", func(t *testing.T) {
		buf.Reset()
		l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gormLogger.ErrRecordNotFound)
		assert.NotContains(t, buf.String(), "query gagal")
	})

	t.Run("SlowQuery", func(t *testing.T) {
		buf.Reset()
		l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return "SELECT SLEEP(1)", 1 }, nil)
		assert.Contains(t, buf.String(), "slow sql")
	})

	t.Run("SilentMode", func(t *testing.T) {
		buf.Reset()
		l.LogMode(gormLogger.Silent).Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
