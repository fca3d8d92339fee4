package middlewares

import (
	"QuickBlog/configs"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSConfigMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins:     strings.Split(configs.GetCORSAllowOrigins(), ","), // frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
