package handler

import (
	"Endpoint_Monitoring_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

// LoggingError skips building request fields when logLevel is disabled.
func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	entry := l.log.Check(logLevel, errDescription)
	if entry == nil {
		return
	}
	entry.Write(append(requestFields(c), zap.Error(err))...)
}

func requestFields(c *gin.Context) []zapcore.Field {
	fields := []zapcore.Field{
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
	}
	if route := c.FullPath(); route != "" {
		fields = append(fields, zap.String("http_route", route))
	}
	if endpointID := c.Param("id"); endpointID != "" {
		fields = append(fields, zap.String("endpoint_id", endpointID))
	}
	if userID := middleware.UserID(c); userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	return fields
}

func NewLogger(l *zap.Logger) Logger {
	return &logger{
		log: l,
	}
}
