package controller

import (
	"errors"
	"strconv"

	"opiol_backend/internal/service"
	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(s *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: s}
}

// @Summary 获取路线图
// @Description 按阶段分组的申请任务及完成进度
// @Tags 路线图
// @Produce json
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Router /api/roadmap [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	util.Success(ctx, c.RoadmapService.GetRoadmap(util.GetClientID(ctx)))
}

// @Summary 切换任务状态
// @Tags 路线图
// @Produce json
// @Param groupId path string true "分组ID"
// @Param taskId path int true "任务ID"
// @Success 200 {object} util.Response{data=service.RoadmapView}
// @Router /api/roadmap/groups/{groupId}/tasks/{taskId}/toggle [post]
func (c *RoadmapController) ToggleTask(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	view, err := c.RoadmapService.ToggleTask(util.GetClientID(ctx), ctx.Param("groupId"), taskID)
	if errors.Is(err, util.ErrTaskNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
