package logger

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// RegisterLog exposes the runtime log level
func RegisterLog(router *gin.RouterGroup) {
	router.GET("/log", getLog)
	router.PUT("/log", updateLog)
}

type LevelContent struct {
	// Example: debug
	Level string `json:"level" binding:"required"`
}

func getLog(c *gin.Context) {
	c.JSON(http.StatusOK, LevelContent{Level: Level().String()})
}

func updateLog(c *gin.Context) {
	var req LevelContent
	err := c.ShouldBindWith(&req, binding.JSON)
	if err == nil {
		err = SetLevel(req.Level)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, map[string]interface{}{
			"code":    "4000000001",
			"message": "请求参数不正确",
			"result":  err.Error(),
		})
		return
	}
	From(c.Request.Context()).Warn("log level changed", zap.String("level", Level().String()))
	c.Status(http.StatusNoContent)
}
