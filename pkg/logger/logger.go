package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger writes JSON entries to both the log file and stderr.
func NewLogger(logLevel string, fileSyncer zapcore.WriteSyncer, serviceName string) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig), zapcore.NewMultiWriteSyncer(
		fileSyncer, zapcore.Lock(os.Stderr)), parseLevel(logLevel))
	logger := zap.New(core, zap.AddCaller())
	if serviceName != "" {
		logger = logger.With(zap.String("service.name", serviceName))
	}
	return logger
}

func parseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// ReloadOnSignal reopens the log file every time a value arrives on signals,
// which is how logrotate's SIGHUP is handled. It returns when signals is closed.
func ReloadOnSignal[T any](logger *zap.Logger, fileSyncer *ReopenableWriteSyncer, signals <-chan T) {
	for range signals {
		logger.Info("receive logrotate SIGHUP, reloading log file")
		if e := fileSyncer.Reload(); e != nil {
			logger.Error("failed to reload log file", zap.Error(e))
		} else {
			logger.Info("successfully reloaded log file")
		}
	}
}
