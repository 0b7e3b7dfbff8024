package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"usercenter/pkg/utils/v"
)

// CrossDomain lets the browser console call the api from origins, all origins when empty.
// The trace id and the export file name are readable by the page.
func CrossDomain(origins ...string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", "Accept", v.HeaderTraceID, v.HeaderSource},
		ExposedHeaders: []string{v.HeaderTraceID, "Content-Disposition"},
		MaxAge:         int((12 * time.Hour).Seconds()),
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		// 预检请求到此为止
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
		}
	}
}
