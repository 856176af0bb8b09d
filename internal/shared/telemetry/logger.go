package telemetry

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init configures the process-wide logger. Dev-like environments get a
// console encoder at debug level, everything else structured JSON at info.
func Init(env string) error {
	level := zapcore.InfoLevel
	encoding := "json"
	if env == "dev" || env == "local" {
		level = zapcore.DebugLevel
		encoding = "console"
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			TimeKey:     "ts",
			EncodeTime:  zapcore.RFC3339TimeEncoder,
		},
	}

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	logger = built
	mu.Unlock()
	return nil
}

// L returns the process-wide logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = L().Sync()
}
