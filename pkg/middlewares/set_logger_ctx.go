package middlewares

import (
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"usercenter/pkg/ctxw"
	"usercenter/pkg/logger"
	"usercenter/pkg/utils/v"
)

// SetZapLogger 设置请求日志，请求头X-Trace-ID为空时自动生成，X-Real-IP为空时取ClientIP
func SetZapLogger(c *gin.Context) {
	traceID := c.GetHeader(v.HeaderTraceID)
	if traceID == "" {
		traceID = uuid.NewV4().String()
		c.Request.Header.Set(v.HeaderTraceID, traceID) // 请求头
	}
	// 设置响应头
	if c.Writer.Header().Get(v.HeaderTraceID) == "" {
		c.Writer.Header().Set(v.HeaderTraceID, traceID)
	}
	realIP := c.GetHeader(v.HeaderRealIP)
	if realIP == "" {
		realIP = c.ClientIP()
	}
	fields := []zapcore.Field{zap.String("trace_id", traceID), zap.String("client_ip", realIP)}
	ctx := ctxw.SetRealIP(ctxw.SetTraceID(c.Request.Context(), traceID), realIP)
	if source := c.GetHeader(v.HeaderSource); source != "" {
		fields = append(fields, zap.String("source", source))
		ctx = ctxw.SetSource(ctx, source)
	}
	l := logger.From(ctx).With(fields...)
	c.Request = c.Request.WithContext(logger.With(ctx, l))
	c.Next()
}
