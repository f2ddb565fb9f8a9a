package app

import (
	"edupath_backend/docs"
	"edupath_backend/internal/config"
	"edupath_backend/internal/middleware"
	"edupath_backend/internal/model"
	"edupath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// 公共路由
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.PUT("/users/me", c.user.UpdateMe)

		// 学习者画像
		authGroup.POST("/profiles", c.profile.Create)
		authGroup.GET("/profiles/me", c.profile.Get)
		authGroup.PUT("/profiles/me", c.profile.Update)

		// 学习目标：读开放，写限教师
		authGroup.GET("/objectives", c.objective.List)
		teacherOnly := authGroup.Group("/")
		teacherOnly.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacherOnly.POST("/objectives", c.objective.Create)
			teacherOnly.PUT("/objectives/:id", c.objective.Update)
			teacherOnly.DELETE("/objectives/:id", c.objective.Delete)
		}

		// 进度
		authGroup.POST("/progress", c.progress.Record)
		authGroup.GET("/progress", c.progress.List)

		// 规划
		authGroup.POST("/plans", c.planning.GeneratePlan)
		authGroup.GET("/plans", c.planning.History)
		authGroup.GET("/plans/:id", c.planning.GetPlan)
		authGroup.POST("/plans/context", c.planning.AnalyzeContext)

		// 资源：读开放，上传和删除限教师
		authGroup.GET("/resources", c.content.List)
		authGroup.GET("/resources/:id", c.content.Get)
		resourceWrite := authGroup.Group("/")
		resourceWrite.Use(middleware.RoleMiddleware(model.Teacher))
		{
			resourceWrite.POST("/resources", c.content.Upload)
			resourceWrite.DELETE("/resources/:id", c.content.Delete)
		}
	}

	// 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.GET("/profiles", c.profile.List)
	}
}
