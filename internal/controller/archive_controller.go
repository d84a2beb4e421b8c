package controller

import (
	"opiol_backend/internal/model"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ArchiveController struct {
	ArchiveService *service.ArchiveService
}

func NewArchiveController(s *service.ArchiveService) *ArchiveController {
	return &ArchiveController{ArchiveService: s}
}

// @Summary 搜索往届学生档案
// @Tags 档案
// @Produce json
// @Param q query string false "姓名、学校或专业关键字"
// @Param country query string false "国家，All 表示全部"
// @Param field query string false "专业，All 表示全部"
// @Param degree query string false "学位，All 表示全部"
// @Success 200 {object} util.Response{data=[]model.StudentProfile}
// @Router /api/archive [get]
func (c *ArchiveController) Search(ctx *gin.Context) {
	var q model.ArchiveQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.ArchiveService.Search(q))
}

// @Summary 档案筛选项
// @Tags 档案
// @Produce json
// @Success 200 {object} util.Response{data=model.ArchiveFilterOptions}
// @Router /api/archive/filters [get]
func (c *ArchiveController) Filters(ctx *gin.Context) {
	util.Success(ctx, c.ArchiveService.Filters())
}
