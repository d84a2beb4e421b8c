package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootRedirect 把 "/" 临时重定向到资料设置页，保留查询参数
func RootRedirect(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := *c.Request.URL
		u.Path = target
		u.RawPath = ""
		c.Redirect(http.StatusTemporaryRedirect, u.RequestURI())
	}
}
