package v

const ServiceName = "usercenter"

// 用户状态
const (
	StatusEnabled  = "启用"
	StatusDisabled = "禁用"
)
