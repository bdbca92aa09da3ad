package handler

import (
	"Endpoint_Monitoring_Service/pkg/middleware"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogger_LoggingError(t *testing.T) {
	testCases := []struct {
		name                 string
		setupContext         func(c *gin.Context)
		err                  error
		errDescription       string
		logLevel             zapcore.Level
		expectedToContain    []string
		expectedToNotContain []string
	}{
		{
			name:           "Success Logs basic info without caller",
			setupContext:   func(c *gin.Context) {},
			err:            errors.New("database connection failed"),
			errDescription: "Failed to connect to the database",
			logLevel:       zapcore.ErrorLevel,
			expectedToContain: []string{
				`"level":"error"`,
				`"msg":"Failed to connect to the database"`,
				`"error":"database connection failed"`,
				`"http_method":"GET"`,
				`"http_path":"/test-path"`,
			},
			expectedToNotContain: []string{"user_id"},
		},
		{
			name: "Success Logs caller when present",
			setupContext: func(c *gin.Context) {
				c.Set(middleware.UserIDContextKey, "user-123")
			},
			err:            errors.New("endpoint not found"),
			errDescription: "failed to get endpoint",
			logLevel:       zapcore.WarnLevel,
			expectedToContain: []string{
				`"level":"warn"`,
				`"user_id":"user-123"`,
			},
		},
		{
			name: "Success Logs endpoint id from the path",
			setupContext: func(c *gin.Context) {
				c.Params = gin.Params{{Key: "id", Value: "e-1"}}
			},
			err:            errors.New("record failed"),
			errDescription: "failed to get results",
			logLevel:       zapcore.ErrorLevel,
			expectedToContain: []string{
				`"endpoint_id":"e-1"`,
			},
		},
		{
			name:                 "Success Disabled level writes nothing",
			setupContext:         func(c *gin.Context) {},
			err:                  errors.New("noise"),
			errDescription:       "debug detail",
			logLevel:             zapcore.DebugLevel,
			expectedToNotContain: []string{"debug detail"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buffer bytes.Buffer
			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(&buffer),
				zapcore.InfoLevel,
			)
			logger := NewLogger(zap.New(core))

			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request, _ = http.NewRequest(http.MethodGet, "/test-path", nil)
			tc.setupContext(c)

			logger.LoggingError(c, tc.err, tc.errDescription, tc.logLevel)
			logOutput := buffer.String()
			for _, expected := range tc.expectedToContain {
				assert.Contains(t, logOutput, expected)
			}
			for _, notExpected := range tc.expectedToNotContain {
				assert.NotContains(t, logOutput, notExpected)
			}
		})
	}
}
