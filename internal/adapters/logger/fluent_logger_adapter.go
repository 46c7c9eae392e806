package logger_adapter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// fluentPoster is the part of *fluent.Fluent the adapter uses.
type fluentPoster interface {
	Post(tag string, message interface{}) error
	Close() error
}

type FluentLoggerAdapter struct {
	client   fluentPoster
	fields   port.Fields
	minLevel slog.Level
}

func NewFluentLoggerAdapter(client *fluent.Fluent, minLevel slog.Leveler) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}
	return newFluentLoggerAdapter(client, minLevel), nil
}

func newFluentLoggerAdapter(client fluentPoster, minLevel slog.Leveler) *FluentLoggerAdapter {
	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}

	return &FluentLoggerAdapter{
		client:   client,
		fields:   make(port.Fields),
		minLevel: level,
	}
}

func (a *FluentLoggerAdapter) mergeFields(fields port.Fields) port.Fields {
	merged := make(port.Fields, len(a.fields)+len(fields))
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentLoggerAdapter) post(level slog.Level, tag string, msg string, data port.Fields) {
	if level < a.minLevel {
		return
	}
	data["level"] = tag
	data["message"] = msg
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	_ = a.client.Post(tag, data)
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	a.post(slog.LevelInfo, "info", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	a.post(slog.LevelWarn, "warn", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	data := a.mergeFields(fields)
	if err != nil {
		data["error"] = err.Error()
	}
	a.post(slog.LevelError, "error", msg, data)
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	a.post(slog.LevelDebug, "debug", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentLoggerAdapter{
		client:   a.client,
		fields:   a.mergeFields(fields),
		minLevel: a.minLevel,
	}
}

func (a *FluentLoggerAdapter) Close() error {
	return a.client.Close()
}
