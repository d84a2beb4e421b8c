package controller

import (
	"opiol_backend/internal/model"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DraftController struct {
	DraftService *service.DraftService
}

func NewDraftController(s *service.DraftService) *DraftController {
	return &DraftController{DraftService: s}
}

// @Summary 获取草稿
// @Description 读取客户端保存的草稿，没有或损坏时返回默认值
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response{data=model.Draft}
// @Router /api/profile-setup/draft [get]
func (c *DraftController) GetDraft(ctx *gin.Context) {
	util.Success(ctx, c.DraftService.Load(ctx.Request.Context(), util.GetClientID(ctx)))
}

// @Summary 保存草稿
// @Tags 资料设置
// @Accept json
// @Produce json
// @Param draft body model.Draft true "草稿档案"
// @Success 200 {object} util.Response{data=model.Draft}
// @Router /api/profile-setup/draft [put]
func (c *DraftController) SaveDraft(ctx *gin.Context) {
	var draft model.Draft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.DraftService.Save(ctx.Request.Context(), util.GetClientID(ctx), draft))
}

// @Summary 清除草稿
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/profile-setup/draft [delete]
func (c *DraftController) ClearDraft(ctx *gin.Context) {
	c.DraftService.Clear(ctx.Request.Context(), util.GetClientID(ctx))
	util.Success(ctx, nil)
}
