package controller

import (
	"errors"

	"opiol_backend/internal/service"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

type AdvisorController struct {
	AdvisorService *service.AdvisorService
	Hub            *service.AdvisorHub
	Translator     *i18n.Translator
}

func NewAdvisorController(s *service.AdvisorService, hub *service.AdvisorHub, tr *i18n.Translator) *AdvisorController {
	return &AdvisorController{AdvisorService: s, Hub: hub, Translator: tr}
}

// @Summary 咨询分类
// @Tags AI顾问
// @Produce json
// @Success 200 {object} util.Response{data=[]model.AdvisorCategory}
// @Router /api/advisor/categories [get]
func (c *AdvisorController) Categories(ctx *gin.Context) {
	util.Success(ctx, c.AdvisorService.Categories())
}

// @Summary 对话记录
// @Tags AI顾问
// @Produce json
// @Success 200 {object} util.Response{data=[]model.AdvisorMessage}
// @Router /api/advisor/messages [get]
func (c *AdvisorController) Messages(ctx *gin.Context) {
	util.Success(ctx, c.AdvisorService.Messages(util.GetClientID(ctx)))
}

// @Summary 发送消息
// @Description 返回用户消息和预设回复，回复前会等待模拟的输入延迟
// @Tags AI顾问
// @Accept json
// @Produce json
// @Param body body object true "{content}"
// @Success 200 {object} util.Response
// @Router /api/advisor/messages [post]
func (c *AdvisorController) Send(ctx *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, reply, err := c.AdvisorService.Ask(ctx.Request.Context(), util.GetClientID(ctx), req.Content)
	if errors.Is(err, util.ErrEmptyMessage) {
		util.BadRequest(ctx, c.Translator.T(util.GetLang(ctx), i18n.MsgAdvisorEmptyMessage))
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": question, "reply": reply})
}

// @Summary 顾问对话 WebSocket
// @Description 发送 {"type":"ASK","data":{"content":"..."}}，依次收到 MESSAGE、TYPING、MESSAGE、TYPING
// @Tags AI顾问
// @Router /api/advisor/ws [get]
func (c *AdvisorController) Stream(ctx *gin.Context) {
	c.Hub.ServeWs(ctx.Writer, ctx.Request, util.GetClientID(ctx), util.GetLang(ctx))
}
