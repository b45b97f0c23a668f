package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warning ", slog.LevelWarn, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestComponentAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter(&buf, slog.LevelWarn), "store")

	log.Info("hidden")
	log.Warn("upsert symbols failed", "err", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, `msg="upsert symbols failed"`)
	assert.Contains(t, out, "err=boom")
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mbfeed.log")

	log, closer, err := New("info", path)
	require.NoError(t, err)
	log.Info("started", "pair", "BTC-BRL")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "pair=BTC-BRL")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
}
