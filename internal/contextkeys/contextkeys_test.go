package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
}

func TestLoggerFromContext_DefaultsToNoop(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)

	// must not panic
	logger.WithFields(nil).Error("ignored", nil, nil)

	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
}
