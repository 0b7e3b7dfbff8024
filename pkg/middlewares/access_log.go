package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"usercenter/pkg/logger"
)

// quietPaths are polled by k8s and prometheus, they are only logged at debug
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// Log one line per request, 5xx at warn
func Log(c *gin.Context) {
	start := time.Now()
	c.Next()

	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("route", c.FullPath()),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
		zap.Int("size", c.Writer.Size()),
	}
	if raw := c.Request.URL.RawQuery; raw != "" {
		fields = append(fields, zap.String("query", raw))
	}
	if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
		fields = append(fields, zap.String("error", errs.String()))
	}
	l := logger.From(c.Request.Context())
	switch _, quiet := quietPaths[c.Request.URL.Path]; {
	case c.Writer.Status() >= 500:
		l.Warn("request", fields...)
	case quiet:
		l.Debug("request", fields...)
	default:
		l.Info("request", fields...)
	}
}
