package kets_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kets"
)

func TestTextLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := kets.NewTextLogger(&buf, slog.LevelDebug)

	logger.WithRank(3).WithWidth(8).LogOrthonormalize(context.Background(), 2, time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "orthonormalize completed")
	assert.Contains(t, out, "rank=3")
	assert.Contains(t, out, "width=8")
	assert.Contains(t, out, "workers=2")
}

func TestJSONLogger_SaveLoad(t *testing.T) {
	var buf bytes.Buffer
	logger := kets.NewJSONLogger(&buf, slog.LevelDebug).WithName("a.kets")

	logger.LogSave(context.Background(), 42, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "basis saved", rec["msg"])
	assert.Equal(t, "a.kets", rec["name"])
	assert.InDelta(t, 42, rec["bytes"], 0)

	buf.Reset()
	logger.LogLoad(context.Background(), errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "load failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := kets.NewTextLogger(&buf, slog.LevelInfo)

	logger.WithRank(1).LogCompress(context.Background(), time.Millisecond)
	assert.Empty(t, buf.String())

	logger.WithName("x").LogSave(context.Background(), 0, errors.New("disk full"))
	assert.Contains(t, buf.String(), "save failed")
	assert.Contains(t, buf.String(), "name=x")
}

func TestNoopLogger(t *testing.T) {
	logger := kets.NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.WithName("a").LogLoad(context.Background(), nil)
}
