package messagestream

import (
	log_internal "camera-rental-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

type loggerAdapter struct {
	z      *zap.Logger
	fields watermill.LogFields
}

// NewLoggerAdapter routes watermill logs into the process zap logger.
func NewLoggerAdapter() watermill.LoggerAdapter {
	return &loggerAdapter{z: log_internal.GetOtelLogger().Logger}
}

func (l *loggerAdapter) zapFields(fields watermill.LogFields) []zap.Field {
	all := l.fields.Add(fields)
	out := make([]zap.Field, 0, len(all))
	for k, v := range all {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func (l *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.z.Error(msg, append(l.zapFields(fields), zap.Error(err))...)
}

func (l *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.z.Info(msg, l.zapFields(fields)...)
}

func (l *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.z.Debug(msg, l.zapFields(fields)...)
}

func (l *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.z.Debug(msg, l.zapFields(fields)...)
}

func (l *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{z: l.z, fields: l.fields.Add(fields)}
}
