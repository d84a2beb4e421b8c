package controller

import (
	"context"
	"errors"
	"net/http"

	"opiol_backend/internal/model"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/mockapi"

	"github.com/gin-gonic/gin"
)

type WizardController struct {
	WizardService *service.WizardService
}

func NewWizardController(s *service.WizardService) *WizardController {
	return &WizardController{WizardService: s}
}

type setFieldRequest struct {
	Field model.DraftField `json:"field" binding:"required"`
	Value interface{}      `json:"value"`
}

// @Summary 获取向导状态
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response{data=model.WizardView}
// @Router /api/profile-setup/wizard [get]
func (c *WizardController) GetWizard(ctx *gin.Context) {
	w := c.WizardService.Session(ctx.Request.Context(), util.GetClientID(ctx), util.GetLang(ctx))
	util.Success(ctx, w.View())
}

// @Summary 关闭向导
// @Description 丢弃当前向导会话，正在进行的提交结果将被忽略，草稿保留
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/profile-setup/wizard [delete]
func (c *WizardController) CloseWizard(ctx *gin.Context) {
	c.WizardService.Close(util.GetClientID(ctx))
	util.Success(ctx, nil)
}

// @Summary 修改草稿字段
// @Tags 资料设置
// @Accept json
// @Produce json
// @Param body body setFieldRequest true "字段与取值"
// @Success 200 {object} util.Response{data=model.WizardView}
// @Router /api/profile-setup/wizard/fields [put]
func (c *WizardController) SetField(ctx *gin.Context) {
	var req setFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	w := c.WizardService.Session(ctx.Request.Context(), util.GetClientID(ctx), util.GetLang(ctx))
	view, err := w.SetField(ctx.Request.Context(), req.Field, req.Value)
	respondWizard(ctx, view, err)
}

// @Summary 下一步
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response{data=model.WizardView}
// @Router /api/profile-setup/wizard/next [post]
func (c *WizardController) Next(ctx *gin.Context) {
	w := c.WizardService.Session(ctx.Request.Context(), util.GetClientID(ctx), util.GetLang(ctx))
	view, err := w.Next()
	respondWizard(ctx, view, err)
}

// @Summary 上一步
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response{data=model.WizardView}
// @Router /api/profile-setup/wizard/back [post]
func (c *WizardController) Back(ctx *gin.Context) {
	w := c.WizardService.Session(ctx.Request.Context(), util.GetClientID(ctx), util.GetLang(ctx))
	view, err := w.Back()
	respondWizard(ctx, view, err)
}

// @Summary 提交向导
// @Description 校验整个草稿后调用模拟接口，请求会等待模拟延迟
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response{data=model.WizardView}
// @Failure 400 {object} util.Response{data=model.WizardView}
// @Failure 409 {object} util.Response{data=model.WizardView}
// @Failure 502 {object} util.Response{data=model.WizardView}
// @Router /api/profile-setup/wizard/submit [post]
func (c *WizardController) Submit(ctx *gin.Context) {
	w := c.WizardService.Session(ctx.Request.Context(), util.GetClientID(ctx), util.GetLang(ctx))
	// 客户端断开不取消提交，只有关闭向导才会丢弃结果
	view, err := w.Submit(context.WithoutCancel(ctx.Request.Context()))
	respondWizard(ctx, view, err)
}

// @Summary 关闭提示
// @Tags 资料设置
// @Produce json
// @Success 200 {object} util.Response{data=model.WizardView}
// @Router /api/profile-setup/wizard/notification/dismiss [post]
func (c *WizardController) DismissNotification(ctx *gin.Context) {
	w := c.WizardService.Session(ctx.Request.Context(), util.GetClientID(ctx), util.GetLang(ctx))
	util.Success(ctx, w.DismissNotification())
}

func respondWizard(ctx *gin.Context, view model.WizardView, err error) {
	if err == nil {
		util.Success(ctx, view)
		return
	}

	var ferr *validation.FieldError
	var apiErr *mockapi.Error
	switch {
	case errors.As(err, &ferr):
		util.ErrorWithData(ctx, http.StatusBadRequest, ferr.Message, view)
	case errors.Is(err, model.ErrUnknownField), errors.Is(err, model.ErrInvalidFieldValue), errors.Is(err, util.ErrNotOnLastStep):
		util.ErrorWithData(ctx, http.StatusBadRequest, err.Error(), view)
	case errors.Is(err, util.ErrSubmitInProgress), errors.Is(err, util.ErrWizardClosed), errors.Is(err, util.ErrWizardFinished):
		util.ErrorWithData(ctx, http.StatusConflict, err.Error(), view)
	case errors.As(err, &apiErr):
		util.ErrorWithData(ctx, http.StatusBadGateway, apiErr.Message, view)
	default:
		// 请求取消等情况，视图中已带有可重试的提示
		util.ErrorWithData(ctx, http.StatusInternalServerError, view.NotificationMessage(), view)
	}
}
