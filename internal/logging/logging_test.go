package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestNewText_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewText(&buf, "warn")
	ctx := context.Background()

	log.Debug(ctx, "quiet")
	log.Info(ctx, "quiet")
	log.Warn(ctx, "loud", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "key=value")
}

func TestWith_AddsPairs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewText(&buf, "info").With("component", "test")

	log.Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), "component=test")
}

func TestNop_DiscardsEverything(t *testing.T) {
	t.Parallel()

	log := Nop()
	log.Error(context.Background(), "dropped")
	assert.Equal(t, log, log.With("a", 1))
}
