package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 存活探针，只看状态码，不做缓存
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusNoContent)
}
