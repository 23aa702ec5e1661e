package router

import (
	"kabarindo/internal/config"
	"kabarindo/internal/handlers"
	"kabarindo/internal/middleware"
	"kabarindo/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, cfg config.Config) {
	// Services yang dibagi antar handler
	commentService := services.NewCommentService(services.DefaultModerationPolicy())
	roleService := services.NewRoleService()

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg.JWTSecret, cfg.SiteURL)
	articleHandler := handlers.NewArticleHandler()
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler()
	bookmarkHandler := handlers.NewBookmarkHandler()
	categoryHandler := handlers.NewCategoryHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()
	devHandler := handlers.NewDevHandler(roleService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	api := r.Group("/api")
	api.Use(middleware.LoadUser(cfg.JWTSecret))

	// Rute auth, dibatasi per IP
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(rate.Limit(1), 5))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}
	api.GET("/auth/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	// Rute publik
	api.GET("/categories", categoryHandler.List)
	api.GET("/articles", articleHandler.List)
	api.GET("/articles/:slug", articleHandler.Detail)
	api.GET("/articles/:slug/comments", commentHandler.ListByArticle)
	api.GET("/settings/:key", devHandler.GetSetting)

	// Rute user terautentikasi
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authorized.POST("/articles/:slug/comments", commentHandler.Create)
		authorized.POST("/articles/:slug/like", likeHandler.Toggle)
		authorized.POST("/articles/:slug/bookmark", bookmarkHandler.Toggle)
		authorized.GET("/user/bookmarks", bookmarkHandler.List)
		authorized.GET("/user/profile", userHandler.Profile)
		authorized.PUT("/user/profile", userHandler.UpdateProfile)
	}

	// Rute staff (ADMIN atau DEVELOPER)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.AdminRequired())
	{
		admin.POST("/categories", categoryHandler.Create)
		admin.POST("/articles", articleHandler.Create)
		admin.PUT("/articles/:id", articleHandler.Update)
		admin.DELETE("/articles/:id", articleHandler.Delete)
		admin.POST("/uploads", uploadHandler.Upload)
		admin.GET("/comments", commentHandler.ListAll)
		admin.GET("/comments/pending", commentHandler.ListPending)
		admin.PUT("/comments/:id/approve", commentHandler.Approve)
		admin.DELETE("/comments/:id", commentHandler.Delete)
		admin.GET("/statistics", adminHandler.Statistics)
	}

	// Rute developer
	dev := api.Group("/dev")
	dev.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.DeveloperRequired())
	{
		dev.GET("/users", devHandler.ListUsers)
		dev.POST("/users/:id/role", devHandler.ChangeRole)
		dev.GET("/user-logs", devHandler.ListUserLogs)
		dev.GET("/settings", devHandler.ListSettings)
		dev.POST("/settings", devHandler.SetSetting)
		dev.DELETE("/settings/:key", devHandler.DeleteSetting)
	}
}
