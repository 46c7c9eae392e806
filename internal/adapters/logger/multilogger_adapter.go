package logger_adapter

import (
	"errors"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

var errNoLoggers = errors.New("multilogger: at least one non-nil logger is required")

// MultiLoggerAdapter sends each record to every configured sink (stdout,
// Fluent Bit) in registration order.
type MultiLoggerAdapter struct {
	sinks []port.LoggerPort
}

// NewMultiloggerAdapter skips nil sinks. A single remaining sink is returned
// unwrapped.
func NewMultiloggerAdapter(sinks ...port.LoggerPort) (port.LoggerPort, error) {
	active := make([]port.LoggerPort, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			active = append(active, sink)
		}
	}

	switch len(active) {
	case 0:
		return nil, errNoLoggers
	case 1:
		return active[0], nil
	}
	return &MultiLoggerAdapter{sinks: active}, nil
}

func (m *MultiLoggerAdapter) emit(write func(sink port.LoggerPort)) {
	for _, sink := range m.sinks {
		write(sink)
	}
}

func (m *MultiLoggerAdapter) Info(msg string, fields port.Fields) {
	m.emit(func(sink port.LoggerPort) { sink.Info(msg, fields) })
}

func (m *MultiLoggerAdapter) Warn(msg string, fields port.Fields) {
	m.emit(func(sink port.LoggerPort) { sink.Warn(msg, fields) })
}

func (m *MultiLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	m.emit(func(sink port.LoggerPort) { sink.Error(msg, err, fields) })
}

func (m *MultiLoggerAdapter) Debug(msg string, fields port.Fields) {
	m.emit(func(sink port.LoggerPort) { sink.Debug(msg, fields) })
}

func (m *MultiLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	scoped := make([]port.LoggerPort, len(m.sinks))
	for i, sink := range m.sinks {
		scoped[i] = sink.WithFields(fields)
	}
	return &MultiLoggerAdapter{sinks: scoped}
}
