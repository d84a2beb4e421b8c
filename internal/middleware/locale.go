package middleware

import (
	"opiol_backend/internal/util"
	"opiol_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware 语言优先级：lang 查询参数、lang cookie、Accept-Language 头，最后是默认语言
func LocaleMiddleware(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")

		if lang == "" {
			lang, _ = c.Cookie(util.LangCookie)
		}

		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}

		c.Set(util.CtxLang, tr.Match(lang))
		c.Next()
	}
}
