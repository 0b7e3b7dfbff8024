package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"usercenter/pkg/utils/v"
)

var (
	traceIDKey = attribute.Key("usercenter.trace_id")
	routeKey   = attribute.Key("http.route")
	methodKey  = attribute.Key("http.method")
	statusKey  = attribute.Key("http.status_code")
)

// Tracing opens one server span per request
func Tracing(service string) gin.HandlerFunc {
	tracer := otel.Tracer(service)
	return func(c *gin.Context) {
		attrs := []attribute.KeyValue{
			routeKey.String(c.FullPath()),
			methodKey.String(c.Request.Method),
		}
		if traceID := c.GetHeader(v.HeaderTraceID); traceID != "" {
			attrs = append(attrs, traceIDKey.String(traceID))
		}
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath(),
			trace.WithSpanKind(trace.SpanKindServer), trace.WithAttributes(attrs...))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		status := c.Writer.Status()
		span.SetAttributes(statusKey.Int(status))
		if status >= 500 {
			span.SetStatus(codes.Error, c.Errors.String())
		}
	}
}
