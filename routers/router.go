package routers

import (
	"QuickBlog/configs"
	"QuickBlog/middlewares"
	"fmt"

	"github.com/gin-gonic/gin"
)

func SetupRouter() error {
	r := gin.Default()
	r.Use(middlewares.CORSConfigMiddleware())
	api := r.Group("/api")
	Register(api)
	fmt.Printf("Server chạy tại %s\n", configs.GetServerDomain())
	return r.Run(fmt.Sprintf(":%s", configs.GetServerPort()))
}
