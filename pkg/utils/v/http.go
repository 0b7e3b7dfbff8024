package v

import "net/textproto"

var (
	HeaderSource  = textproto.CanonicalMIMEHeaderKey("X-Source")
	HeaderTraceID = textproto.CanonicalMIMEHeaderKey("X-Trace-ID")
	HeaderRealIP  = textproto.CanonicalMIMEHeaderKey("X-Real-IP")
)

// gin上下文中的键
const (
	KeyView = "usercenter.view"
)
