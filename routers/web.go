package routers

import (
	"QuickBlog/configs"
	"QuickBlog/controllers"
	"QuickBlog/middlewares"

	"github.com/gin-gonic/gin"
)

func Register(router *gin.RouterGroup) {
	maxBodySize := configs.GetMaxBodySize()

	//Blog
	blogRouter := router.Group("blog")
	{
		blogRouter.GET("/all", controllers.GetAllBlogs)
		blogRouter.GET("/:blogId", controllers.GetBlogByID)
		blogRouter.POST("/add", middlewares.AuthorizeJWTMiddleware(), middlewares.MaxBodySizeMiddleware(maxBodySize), controllers.AddBlog)
		blogRouter.PUT("/edit/:id", middlewares.AuthorizeJWTMiddleware(), middlewares.MaxBodySizeMiddleware(maxBodySize), controllers.EditBlog)
		blogRouter.POST("/delete", middlewares.AuthorizeJWTMiddleware(), controllers.DeleteBlog)
		blogRouter.POST("/toggle-publish", middlewares.AuthorizeJWTMiddleware(), controllers.TogglePublish)

		blogRouter.POST("/add-comment", controllers.AddComment)
		blogRouter.POST("/comments", controllers.GetBlogComments)

		blogRouter.POST("/generate", middlewares.AuthorizeJWTMiddleware(), controllers.GenerateContent)
		blogRouter.POST("/generate-seo", middlewares.AuthorizeJWTMiddleware(), controllers.GenerateSeo)
		blogRouter.POST("/generate-image", middlewares.AuthorizeJWTMiddleware(), controllers.GenerateImage)
	}

	//Admin
	adminRouter := router.Group("admin")
	{
		adminRouter.POST("/login", controllers.Login)
		adminRouter.POST("/refresh", controllers.RefreshToken)
		adminRouter.POST("/logout", middlewares.AuthorizeJWTMiddleware(), controllers.Logout)
		adminRouter.GET("/dashboard", middlewares.AuthorizeJWTMiddleware(), controllers.GetDashboard)
		adminRouter.GET("/blogs", middlewares.AuthorizeJWTMiddleware(), controllers.GetAllBlogsAdmin)
		adminRouter.GET("/comments", middlewares.AuthorizeJWTMiddleware(), controllers.GetAllCommentsAdmin)
		adminRouter.POST("/delete-comment", middlewares.AuthorizeJWTMiddleware(), controllers.DeleteComment)
	}
}
