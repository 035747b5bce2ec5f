package controller

import (
	"edu_catalog_backend/internal/service"
	"edu_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Service *service.CatalogService
}

func NewHealthController(s *service.CatalogService) *HealthController {
	return &HealthController{Service: s}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Service.Ping(ctx.Request.Context()); err != nil {
		util.ServiceUnavailable(ctx, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
