package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"course_compass_backend/internal/util"
)

// SessionToken 解析 Bearer 会话令牌并放入上下文。
// 令牌只标识评估会话，不代表用户身份
func SessionToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(parts[1], secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("session", claims)
		c.Next()
	}
}
