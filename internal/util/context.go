package util

import "github.com/gin-gonic/gin"

// RequestID 读取中间件写入的请求 ID
func RequestID(c *gin.Context) string {
	if v, ok := c.Get(CtxRequestID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
