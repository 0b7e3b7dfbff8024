package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"usercenter/internal/controllers"
	"usercenter/internal/service"
	"usercenter/pkg/code"
	"usercenter/pkg/limit"
	"usercenter/pkg/logger"
	"usercenter/pkg/middlewares"
	"usercenter/pkg/resp"
	"usercenter/pkg/utils/v"
)

// New gin router, rlf builds the rate limiter of each client and origins are
// the console origins allowed to call across domains
func New(srv service.Service, rlf func(key string) limit.RateLimiter, origins ...string) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		resp.Error(c, code.ErrNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		resp.Error(c, code.ErrNotAllowMethod)
	})

	router.Use(
		middlewares.Recovery,
		middlewares.SetZapLogger,
		middlewares.Log,
		middlewares.Metric,
		middlewares.Tracing(v.ServiceName),
		middlewares.CrossDomain(origins...),
	)

	router.GET("/health", controllers.Health)
	router.HEAD("/health", controllers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1RouterGroup(router, srv, rlf)

	return router
}

func v1RouterGroup(router *gin.Engine, srv service.Service, rlf func(key string) limit.RateLimiter) {
	v1Router := router.Group("/v1")
	logger.RegisterLog(v1Router)

	registerUser(v1Router.Group("", middlewares.RateLimit(rlf)), srv)
}
