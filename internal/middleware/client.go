package middleware

import (
	"net/http"

	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const clientCookieMaxAge = 365 * 24 * 60 * 60

// ClientMiddleware 识别客户端：先取 X-Client-ID 头，再取 client_id cookie，
// 都没有时签发新的 UUID。仅用于区分各客户端的状态，不是身份认证
func ClientMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(util.ClientIDHeader)

		if clientID == "" {
			if cookie, err := c.Cookie(util.ClientIDCookie); err == nil {
				clientID = cookie
			}
		}

		if clientID == "" {
			clientID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(util.ClientIDCookie, clientID, clientCookieMaxAge, "/", "", false, true)
		}

		c.Set(util.CtxClientID, clientID)
		c.Next()
	}
}
