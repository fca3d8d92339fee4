package middlewares

import (
	"QuickBlog/consts"
	"QuickBlog/database"
	"QuickBlog/utils"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func AuthorizeJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			redisClient = database.GetRedisClient().Client
		)
		authHeader := c.GetHeader("Authorization")
		authHeader = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if authHeader == "" {
			utils.ResponseError(c, http.StatusUnauthorized, "Missing token")
			c.Abort()
			return
		}

		// Token đã logout thì nằm trong blacklist
		key := fmt.Sprintf("blacklist:accesstoken:%s", authHeader)
		result, err := redisClient.Exists(c.Request.Context(), key).Result()
		if err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, "Lỗi do hệ thống redis blacklist!")
			c.Abort()
			return
		}
		if result != 0 {
			utils.ResponseError(c, http.StatusUnauthorized, "Token hiện tại không dùng được!")
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(authHeader)
		if err != nil || !token.Valid {
			msg := "Invalid token"
			if err != nil {
				msg = err.Error()
			}
			utils.ResponseError(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		tokenClaims, err := utils.ExtractCustomClaims(token.Raw)
		if err != nil || tokenClaims.Type != consts.TokenTypeAccess {
			utils.ResponseError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set("admin_email", tokenClaims.Email)
		c.Next()
	}
}
