package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type logger struct {
	otel *otelzap.Logger
}

var (
	mu         sync.RWMutex
	otelLogger *otelzap.Logger
)

// SetupLogger builds the process zap logger. An unknown level falls back to info.
func SetupLogger(level ...string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if len(level) > 0 {
		lvl, err := zapcore.ParseLevel(level[0])
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return z
}

func Init(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	otelLogger = otelzap.New(z, otelzap.WithTraceIDField(true))
	otelzap.ReplaceGlobals(otelLogger)
}

// GetOtelLogger returns the logger used by handlers and middleware.
func GetOtelLogger() *otelzap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if otelLogger == nil {
		return otelzap.New(zap.NewNop())
	}
	return otelLogger
}

func GetLogger() Logger {
	return &logger{otel: GetOtelLogger()}
}

// Setup returns a development logger, used by tests.
func Setup() *otelzap.Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		z = zap.NewNop()
	}
	return otelzap.New(z)
}

// New wraps an otelzap logger in the Logger interface.
func New(l *otelzap.Logger) Logger {
	return &logger{otel: l}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Debug(msg, toZapFields(fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Info(msg, toZapFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Warn(msg, toZapFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Error(msg, toZapFields(fields)...)
}

func toZapFields(fields []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for i, f := range fields {
		switch v := f.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("field_%d", i), v))
		}
	}
	return out
}
