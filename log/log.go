package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// Default returns the shared production zap logger writing JSON to stderr.
// It is built once and falls back to a no-op logger if zap cannot be built.
var Default = sync.OnceValue(func() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
})

// NewConsole returns a human readable logger writing to ws at level and above.
func NewConsole(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(ws),
		level,
	)
	return zap.New(consoleCore)
}

// Emit writes msg with the structured fields at the given level.
// Unknown levels are logged as info.
func Emit(logger *zap.Logger, level LogLevel, msg string, fields map[string]any) {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zf...)
	case LogWarn:
		logger.Warn(msg, zf...)
	case LogError:
		logger.Error(msg, zf...)
	case LogDebug:
		logger.Debug(msg, zf...)
	default:
		logger.Info(msg, zf...)
	}
}
