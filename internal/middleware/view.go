package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"usercenter/internal/request"
	"usercenter/internal/service"
	"usercenter/internal/service/user"
	"usercenter/pkg/logger"
	"usercenter/pkg/resp"
	"usercenter/pkg/utils/v"
)

// View 加载路径中的视图，不存在或已过期时直接返回404
func View(srv service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri request.ViewURI
		if err := c.ShouldBindUri(&uri); err != nil {
			resp.ErrorParam(c, err)
			return
		}
		ctx := c.Request.Context()
		users, err := srv.Views().Users(ctx, uri.View)
		if err != nil {
			resp.Error(c, err)
			return
		}
		l := logger.From(ctx).With(zap.String("view_id", uri.View))
		c.Request = c.Request.WithContext(logger.With(ctx, l))
		c.Set(v.KeyView, users)
		c.Next()
	}
}

// Users 取出View中间件加载的视图
func Users(c *gin.Context) user.UserSrv {
	return c.MustGet(v.KeyView).(user.UserSrv)
}
