package controller

import (
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 获取仪表盘数据
// @Description 问候语、整体进度和近期任务
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.GetDashboard())
}
