package ctxw

import (
	"context"
	"net/http"

	"usercenter/pkg/utils/v"
)

type (
	headerTraceIDKey struct{}
	headerSourceKey  struct{}
	realIPKey        struct{}
)

func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, headerTraceIDKey{}, traceID)
}

func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(headerTraceIDKey{}).(string)
	return traceID
}

// SetSource X-Source请求头，标识调用方
func SetSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, headerSourceKey{}, source)
}

func GetSource(ctx context.Context) string {
	source, _ := ctx.Value(headerSourceKey{}).(string)
	return source
}

// SetRealIP 请求方的真实ip
func SetRealIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, realIPKey{}, ip)
}

func GetRealIP(ctx context.Context) string {
	ip, _ := ctx.Value(realIPKey{}).(string)
	return ip
}

// InjectHeader 透传trace id和真实ip到下游，已设置的请求头不覆盖
func InjectHeader(ctx context.Context, header http.Header) {
	for name, value := range map[string]string{
		v.HeaderTraceID: GetTraceID(ctx),
		v.HeaderRealIP:  GetRealIP(ctx),
	} {
		if value != "" && header.Get(name) == "" {
			header.Set(name, value)
		}
	}
}
