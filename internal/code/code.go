package code

import "usercenter/pkg/code"

var (
	// 100~199 用户管理

	ErrUserNotFound         = code.Froze("4041000100", "用户不存在")
	ErrDuplicateUser        = code.Froze("4091000101", "该用户名称和手机号码组合已存在")
	ErrEmptySelection       = code.Froze("4001000102", "请选择要删除的用户")
	ErrViewNotFound         = code.Froze("4041000103", "视图不存在或已过期")
	ErrConfirmationNotFound = code.Froze("4041000104", "确认操作不存在或已失效")
	ErrImportNotImplemented = code.Froze("5011000105", "导入功能待实现")
	ErrInvalidSeed          = code.Froze("5001000106", "初始用户数据不合法")
)

// Loading checks the business codes once at start up
func Loading() error {
	return code.AddCode(map[code.ErrorCode]struct{}{
		ErrUserNotFound:         {},
		ErrDuplicateUser:        {},
		ErrEmptySelection:       {},
		ErrViewNotFound:         {},
		ErrConfirmationNotFound: {},
		ErrImportNotImplemented: {},
		ErrInvalidSeed:          {},
	})
}
