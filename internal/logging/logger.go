// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/chiliososada/skills-extractor/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// New creates a logger writing to stderr. Standard output is reserved for
// extraction results.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core), nil
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// TestLogger captures log entries for assertions.
type TestLogger struct {
	*zap.Logger
	logs *observer.ObservedLogs
}

// NewTestLogger creates a logger that records entries at level and above.
func NewTestLogger(level zapcore.Level) *TestLogger {
	core, logs := observer.New(level)
	return &TestLogger{Logger: zap.New(core), logs: logs}
}

// Messages returns the logged messages in order.
func (l *TestLogger) Messages() []string {
	entries := l.logs.All()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// Filter returns the entries with the given message.
func (l *TestLogger) Filter(msg string) []observer.LoggedEntry {
	return l.logs.FilterMessage(msg).All()
}

// Reset clears captured entries.
func (l *TestLogger) Reset() {
	l.logs.TakeAll()
}
