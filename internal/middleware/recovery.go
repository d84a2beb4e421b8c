package middleware

import (
	"fmt"
	"net/http"

	"opiol_backend/internal/util"
	"opiol_backend/pkg/i18n"
	"opiol_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BoundaryResponse 未预期的故障返回的通用致歉信息，客户端可重试
type BoundaryResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

// Recovery 捕获处理函数中的 panic，记录原始错误，只向客户端返回通用信息
func Recovery(tr *i18n.Translator) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Unhandled fault",
			zap.String("error", fmt.Sprint(recovered)),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)

		lang := util.GetLang(c)
		if lang == "" {
			lang = tr.DefaultLanguage()
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, util.Response{
			Code:    http.StatusInternalServerError,
			Message: tr.T(lang, i18n.MsgBoundaryMessage),
			Data: BoundaryResponse{
				Title:   tr.T(lang, i18n.MsgBoundaryTitle),
				Message: tr.T(lang, i18n.MsgBoundaryMessage),
				Retry:   true,
			},
		})
	})
}
