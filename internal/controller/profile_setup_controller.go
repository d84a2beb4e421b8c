package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"opiol_backend/internal/model"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/i18n"
	"opiol_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageBody 与 ErrorBody 是 /profile-setup/api 的响应体，保持与前端约定一致
type MessageBody struct {
	Message string `json:"message"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

type ProfileSetupController struct {
	ProfileSetupService *service.ProfileSetupService
	Translator          *i18n.Translator
}

func NewProfileSetupController(s *service.ProfileSetupService, tr *i18n.Translator) *ProfileSetupController {
	return &ProfileSetupController{ProfileSetupService: s, Translator: tr}
}

// @Summary 提交个人资料
// @Description 服务端再次校验草稿并通过模拟接口提交。响应体不使用统一结构：成功为 {message}，失败为 {error}
// @Tags 资料设置
// @Accept json
// @Produce json
// @Param draft body model.DraftInput true "草稿档案"
// @Success 200 {object} MessageBody
// @Failure 400 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /profile-setup/api [post]
func (c *ProfileSetupController) Submit(ctx *gin.Context) {
	lang := util.GetLang(ctx)

	var input model.DraftInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		// 字段类型错误按该字段的校验失败处理，其余解析错误视为服务器错误
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && isDraftField(typeErr.Field) {
			ctx.JSON(http.StatusBadRequest, ErrorBody{Error: c.Translator.T(lang, validation.MessageID(model.DraftField(typeErr.Field)))})
			return
		}
		logger.Log.Error("Profile setup error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: c.Translator.T(lang, i18n.MsgServerError)})
		return
	}

	_, err := c.ProfileSetupService.SubmitInput(ctx.Request.Context(), input, lang)
	if err == nil {
		ctx.JSON(http.StatusOK, MessageBody{Message: c.Translator.T(lang, i18n.MsgProfileSaved)})
		return
	}

	var ferr *validation.FieldError
	switch {
	case errors.As(err, &ferr):
		ctx.JSON(http.StatusBadRequest, ErrorBody{Error: ferr.Message})
	case errors.Is(err, service.ErrSubmissionRejected):
		ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: c.Translator.T(lang, i18n.MsgProfileSaveFailed)})
	default:
		logger.Log.Error("Profile setup error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: c.Translator.T(lang, i18n.MsgServerError)})
	}
}

func isDraftField(name string) bool {
	for _, f := range model.DraftFields {
		if string(f) == name && f != model.FieldEnglishTestScore {
			return true
		}
	}
	return false
}
