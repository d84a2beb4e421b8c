package controller

import (
	"opiol_backend/internal/model"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(s *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: s}
}

// @Summary 个人主页
// @Tags 个人主页
// @Produce json
// @Success 200 {object} util.Response{data=service.ProfilePage}
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	util.Success(ctx, c.ProfileService.GetProfile(util.GetClientID(ctx)))
}

// @Summary 更新个人信息
// @Description 只保存在内存中
// @Tags 个人主页
// @Accept json
// @Produce json
// @Param info body model.UserInfo true "个人信息"
// @Success 200 {object} util.Response{data=service.ProfilePage}
// @Router /api/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var info model.UserInfo
	if err := ctx.ShouldBindJSON(&info); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.ProfileService.UpdateProfile(util.GetClientID(ctx), info))
}
