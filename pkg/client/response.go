package client

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"usercenter/pkg/code"
	"usercenter/pkg/json"
)

// maxErrorBody 错误响应最多读取的字节数
const maxErrorBody = 64 << 10

type Response interface {
	Parse(resp *http.Response, result interface{}) error
}

// ResponseHandler turns non-2xx into an ErrorCode and decodes json bodies
type ResponseHandler struct{}

func (ResponseHandler) Parse(resp *http.Response, result interface{}) error {
	if !Successful(resp.StatusCode) {
		return errors.WithStack(code.From(resp.StatusCode, io.LimitReader(resp.Body, maxErrorBody)))
	}
	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}
	if err := CheckJSON(resp.Header.Get("Content-Type")); err != nil {
		return err
	}
	if err := json.DecodeUseNumber(resp.Body, result); err != nil {
		return errors.WithStack(code.ErrParseContent.WithResult(err.Error()))
	}
	return nil
}

// Successful reports a 2xx status
func Successful(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// CheckJSON accepts application/json and any +json media type
func CheckJSON(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return errors.WithStack(code.ErrParseContent.WithResult(err.Error()))
	}
	if mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json") {
		return errors.WithStack(code.ErrParseContent.WithResult(
			fmt.Sprintf("can't parse content-type %s", contentType)))
	}
	return nil
}
