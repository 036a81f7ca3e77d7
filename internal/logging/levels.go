package logging

import (
	"go.uber.org/zap/zapcore"

	"github.com/kaplat/book-server/internal/models"
)

// TraceLevel sits one step below zap's debug level.
const TraceLevel = zapcore.DebugLevel - 1

// ZapLevel maps a level name to the zap level enforced by the logger.
func ZapLevel(l models.LogLevel) zapcore.Level {
	switch l {
	case models.LogLevelError:
		return zapcore.ErrorLevel
	case models.LogLevelWarn:
		return zapcore.WarnLevel
	case models.LogLevelDebug:
		return zapcore.DebugLevel
	case models.LogLevelTrace:
		return TraceLevel
	default:
		return zapcore.InfoLevel
	}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == TraceLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}
