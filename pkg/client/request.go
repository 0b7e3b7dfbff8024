package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"usercenter/pkg/code"
	"usercenter/pkg/ctxw"
	"usercenter/pkg/json"
)

type Requester interface {
	Build(ctx context.Context, method, url string, body interface{}, headers http.Header) (*http.Request, error)
}

// OriginalRequest sends readers and raw text as they are, url.Values as a form
// and anything else as json
type OriginalRequest struct{}

func (o OriginalRequest) Build(ctx context.Context, method, uri string, body interface{},
	headers http.Header) (*http.Request, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	for key, values := range headers {
		req.Header[key] = append(req.Header[key], values...)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	// 透传trace id
	ctxw.InjectHeader(ctx, req.Header)
	return req, nil
}

// encodeBody returns a nil reader for a nil body, contentType is empty when
// the caller is expected to set it
func encodeBody(body interface{}) (io.Reader, string, error) {
	switch data := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return data, "", nil
	case string:
		return strings.NewReader(data), "", nil
	case []byte:
		return bytes.NewReader(data), "", nil
	case url.Values:
		return strings.NewReader(data.Encode()), "application/x-www-form-urlencoded", nil
	default:
		content, err := json.Marshal(data)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(content), "application/json; charset=utf-8", nil
	}
}
