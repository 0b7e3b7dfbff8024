package code

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"usercenter/pkg/json"
)

// ErrorCode is an error that knows how it is rendered to the console:
// http status, business code, user facing message and optional result.
type ErrorCode interface {
	error
	ServiceName() string
	StatusCode() int
	Code() string
	Message() string
	Result() interface{}
	WithMessage(string) ErrorCode
	WithResult(interface{}) ErrorCode
	Is(error) bool
}

// codeLength 3(service)+4(error)
const codeLength = 7

// From parse the ErrorCode from an upstream response body
func From(statusCode int, body io.Reader) ErrorCode {
	var result struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Result  interface{} `json:"result"`
	}
	if err := json.DecodeUseNumber(body, &result); err != nil || result.Code == "" {
		return ErrUpstream.WithResult(fmt.Sprintf("upstream responded with status %d", statusCode))
	}
	return Froze(result.Code, result.Message).WithResult(result.Result)
}

// Froze defines ErrorCode, code format is [service.]3(http)+3(service)+4(error)
func Froze(code, message string) ErrorCode {
	return (&errCode{}).froze(code, message, nil)
}

type errCode struct {
	serviceName    string
	httpStatusCode int
	// 3(service)+4(error)
	code    string
	message string
	result  interface{}
}

func (e *errCode) Error() string {
	return fmt.Sprintf("service_name:%s,http_status_code:%d,code:%s,message:%s,result:%v",
		e.serviceName, e.httpStatusCode, e.code, e.message, e.result)
}

func (e *errCode) ServiceName() string {
	return e.serviceName
}

func (e *errCode) StatusCode() int {
	return e.httpStatusCode
}

func (e *errCode) Code() string {
	return e.code
}

func (e *errCode) Message() string {
	return e.message
}

func (e *errCode) Result() interface{} {
	return e.result
}

func (e *errCode) WithMessage(msg string) ErrorCode {
	ec := *e
	ec.message = msg
	return &ec
}

func (e *errCode) WithResult(result interface{}) ErrorCode {
	ec := *e
	ec.result = result
	return &ec
}

// Is matches on the business code only, so errors.Is(err, ErrDuplicateUser)
// holds for copies carrying another message or result.
func (e *errCode) Is(v error) bool {
	err, ok := v.(ErrorCode)
	if !ok {
		return false
	}
	return err.Code() == e.Code()
}

// FullCode is the code as rendered on the wire
func FullCode(e ErrorCode) string {
	if e.ServiceName() == "" {
		return fmt.Sprintf("%3d%s", e.StatusCode(), e.Code())
	}
	return fmt.Sprintf("%s.%3d%s", e.ServiceName(), e.StatusCode(), e.Code())
}

func (e *errCode) froze(code, message string, result interface{}) ErrorCode {
	// 默认 ErrInternalServerError
	e.httpStatusCode = http.StatusInternalServerError
	e.code = "0000001"
	e.message = message

	multiErrCode := strings.ReplaceAll(code, "-", "")
	if index := strings.Index(multiErrCode, "."); index > 0 {
		e.serviceName = multiErrCode[:index]
		if index >= len(multiErrCode)-1 {
			return e.WithResult(code + ";" + message)
		}
		multiErrCode = multiErrCode[index+1:]
	}
	if len(multiErrCode) <= 3 {
		return e.WithResult(code + ";" + message)
	}
	httpStatusCode, err := strconv.Atoi(multiErrCode[:3])
	if err != nil {
		return e.WithResult(fmt.Sprintf("code:%s,message:%s;%v", code, message, err))
	}
	if httpStatusCode < 100 || httpStatusCode > 599 {
		return e.WithResult(code + ";" + message)
	}
	e.httpStatusCode = httpStatusCode
	e.code = multiErrCode[3:]
	e.result = result
	return e
}

func (e *errCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Result  interface{} `json:"result"`
	}{
		Code:    FullCode(e),
		Message: e.Message(),
		Result:  e.Result(),
	})
}

func (e *errCode) UnmarshalJSON(bytes []byte) error {
	var result struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Result  interface{} `json:"result"`
	}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	_ = e.froze(result.Code, result.Message, result.Result)
	return nil
}
