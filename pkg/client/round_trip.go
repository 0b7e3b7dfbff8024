package client

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"moul.io/http2curl"

	"usercenter/pkg/logger"
)

// maxLoggedBody 响应体超过该长度时截断打印
const maxLoggedBody = 4096

// CurlRoundTripper logs every request as a curl command with its status and cost
func CurlRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &curlTransport{next: next}
}

type curlTransport struct {
	next http.RoundTripper
}

func (c *curlTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	// 打印curl语句，便于问题分析和定位
	curl, err := http2curl.GetCurlCommand(req)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := c.next.RoundTrip(req)
	if err != nil {
		logger.From(ctx).Warn("call request failed",
			zap.Stringer("request", curl),
			zap.Duration("cost", time.Since(start)),
			zap.Error(err))
		return nil, err
	}
	fields := []zap.Field{
		zap.Stringer("request", curl),
		zap.String("status", resp.Status),
		zap.Duration("cost", time.Since(start)),
	}
	if resp.StatusCode != http.StatusNoContent && resp.Body != nil {
		var body []byte
		if body, err = io.ReadAll(resp.Body); err != nil {
			resp.Body.Close()
			return nil, err
		}
		resp.Body.Close()
		// reset the body so the caller can read it again
		resp.Body = io.NopCloser(bytes.NewReader(body))
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody]
		}
		fields = append(fields, zap.ByteString("response", body))
	}
	logger.From(ctx).Debug("call request end", fields...)
	return resp, nil
}
