package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
