package resp

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"usercenter/pkg/code"
	"usercenter/pkg/logger"
)

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

// Error gin Response with error
func Error(c *gin.Context, err error) {
	var e code.ErrorCode
	if !errors.As(err, &e) {
		logger.From(c.Request.Context()).Error("response failed", zap.Error(err))
		e = code.ErrCodeUnknown.WithResult(fmt.Sprintf("%v %v", code.ErrCodeUnknown.Result(), err))
	} else if e.StatusCode() >= 500 {
		logger.From(c.Request.Context()).Error("response failed", zap.Error(err))
	} else {
		logger.From(c.Request.Context()).Info("request rejected", zap.Error(err))
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(e.StatusCode(), &response{
		Code:    code.FullCode(e),
		Message: e.Message(),
		Result:  e.Result(),
	})
}

// ErrorParam gin response with invalid parameter tip, one message per field
func ErrorParam(c *gin.Context, err error) {
	errs := multierr.Errors(err)
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Error()
	}
	Error(c, code.ErrInvalidParam.WithResult(messages))
}
