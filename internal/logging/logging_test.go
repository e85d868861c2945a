package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
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
		{"WARN", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
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

func TestConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	logger, cleanup, err := New(&console, "debug", "")
	require.NoError(t, err)
	defer cleanup()

	logger.Info("parsed guide", "acts", 3)
	logger.Warn("zone missing", "id", "1_1_4")

	out := console.String()
	assert.NotContains(t, out, "parsed guide")
	assert.Contains(t, out, "zone missing")
	assert.Contains(t, out, "id=1_1_4")
}

func TestFileOutput(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "actguide.log")

	logger, cleanup, err := New(&console, "debug", path)
	require.NoError(t, err)

	logger.With("component", "parser").Debug("act heading", "act", 7)
	logger.Error("read failed")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"act heading"`)
	assert.Contains(t, lines[0], `"component":"parser"`)
	assert.Contains(t, lines[1], `"level":"ERROR"`)

	assert.NotContains(t, console.String(), "act heading")
	assert.Contains(t, console.String(), "read failed")
}

func TestBadLevel(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, "loud", "")
	assert.Error(t, err)
}
