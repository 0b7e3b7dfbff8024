package code

import "fmt"

var (
	// 00~99为服务级别错误码

	ErrInternalServerError = Froze("5000000000", "服务器内部错误")
	ErrInvalidParam        = Froze("4000000001", "请求参数不正确")
	ErrNotFound            = Froze("4040000002", "资源不存在")
	ErrNotAllowMethod      = Froze("4050000003", "不允许此方法")
	ErrParseContent        = Froze("5000000004", "解析内容失败")
	ErrCodeUnknown         = Froze("5000000005", "未知错误")
	ErrTooManyRequests     = Froze("4290000006", "请求过于频繁")
	ErrRequestTimeout      = Froze("5040000007", "请求超时")
	ErrUpstream            = Froze("5020000008", "上游服务响应异常")
)

// AddCode checks business codes against the common ones, every code must be unique
func AddCode(m map[ErrorCode]struct{}) error {
	temp := make(map[string]string)
	for _, errorCode := range []ErrorCode{
		ErrInternalServerError,
		ErrInvalidParam,
		ErrNotFound,
		ErrNotAllowMethod,
		ErrParseContent,
		ErrCodeUnknown,
		ErrTooManyRequests,
		ErrRequestTimeout,
		ErrUpstream,
	} {
		if err := register(temp, errorCode); err != nil {
			return err
		}
	}
	for errorCode := range m {
		if err := register(temp, errorCode); err != nil {
			return err
		}
	}
	return nil
}

func register(box map[string]string, errorCode ErrorCode) error {
	if err := check(errorCode); err != nil {
		return err
	}
	code := errorCode.Code()
	if value, ok := box[code]; ok {
		return fmt.Errorf("error code %s(%s) already exists", code, value)
	}
	box[code] = errorCode.Message()
	return nil
}

// check validate ErrorCode's code must be 3(http)+3(service)+4(error)
func check(err ErrorCode) error {
	code := err.Code()
	statusCode := err.StatusCode()
	if statusCode < 100 || statusCode >= 600 {
		return fmt.Errorf("error code %s has invalid status code %d", code, statusCode)
	}
	if l := len(code); l != codeLength {
		return fmt.Errorf("error code %s is %d,but it must be %d", code, l, codeLength)
	}
	return nil
}
