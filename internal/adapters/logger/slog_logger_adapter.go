package logger_adapter

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"

	"github.com/lmittmann/tint"
)

// SlogAdapter implements LoggerPort on top of log/slog.
type SlogAdapter struct {
	logger *slog.Logger
}

type SlogConfig struct {
	// Writer defaults to os.Stdout.
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	IsJSON    bool
	UseColor  bool
}

func NewSlogAdapter(cfg SlogConfig) port.LoggerPort {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     cfg.Level,
	}

	var handler slog.Handler
	if cfg.IsJSON {
		handler = slog.NewJSONHandler(cfg.Writer, opts)
	} else if cfg.UseColor {
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	} else {
		handler = slog.NewTextHandler(cfg.Writer, opts)
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

// fieldsToSlogAttrs converts port.Fields to slog key/value pairs, sorted by key
// so records are stable across runs.
func (a *SlogAdapter) fieldsToSlogAttrs(fields port.Fields) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}

func (a *SlogAdapter) Info(msg string, fields port.Fields) {
	a.logger.Info(msg, a.fieldsToSlogAttrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields port.Fields) {
	a.logger.Warn(msg, a.fieldsToSlogAttrs(fields)...)
}

func (a *SlogAdapter) Error(msg string, err error, fields port.Fields) {
	attrs := a.fieldsToSlogAttrs(fields)
	if err != nil {
		attrs = append(attrs, tint.Err(err))
	}
	a.logger.Error(msg, attrs...)
}

func (a *SlogAdapter) Debug(msg string, fields port.Fields) {
	a.logger.Debug(msg, a.fieldsToSlogAttrs(fields)...)
}

func (a *SlogAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &SlogAdapter{logger: a.logger.With(a.fieldsToSlogAttrs(fields)...)}
}
