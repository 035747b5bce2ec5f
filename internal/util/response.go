package util

import (
	"edu_catalog_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应信封：成功时返回 data，失败时返回 error
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// LogInternalError 记录错误详情后返回通用 500，错误详情不下发给调用方
func LogInternalError(c *gin.Context, message string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("path", c.FullPath()),
		zap.String("request_id", RequestID(c)),
		zap.Error(err),
	)
	logger.Log.Error(message, fields...)
	InternalServerError(c, message)
}
