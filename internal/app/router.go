package app

import (
	"opiol_backend/docs"
	"opiol_backend/internal/middleware"
	"opiol_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const profileSetupPath = "/profile-setup"

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", middleware.RootRedirect(profileSetupPath))

	clientScoped := []gin.HandlerFunc{middleware.ClientMiddleware(), middleware.LocaleMiddleware(a.Translator)}

	// 1. 资料设置提交接口（保持原有响应体）
	setup := router.Group(profileSetupPath, clientScoped...)
	{
		setup.POST("/api", c.profileSetup.Submit)
	}

	api := router.Group("/api", clientScoped...)
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerProfileSetupRoutes(api, c)
		a.registerPageRoutes(api, c)
	}
}

func (a *App) registerProfileSetupRoutes(rg *gin.RouterGroup, c *controllers) {
	draft := rg.Group("/profile-setup/draft")
	{
		draft.GET("", c.draft.GetDraft)
		draft.PUT("", c.draft.SaveDraft)
		draft.DELETE("", c.draft.ClearDraft)
	}

	wizard := rg.Group("/profile-setup/wizard")
	{
		wizard.GET("", c.wizard.GetWizard)
		wizard.DELETE("", c.wizard.CloseWizard)
		wizard.PUT("/fields", c.wizard.SetField)
		wizard.POST("/next", c.wizard.Next)
		wizard.POST("/back", c.wizard.Back)
		wizard.POST("/submit", c.wizard.Submit)
		wizard.POST("/notification/dismiss", c.wizard.DismissNotification)
	}
}

func (a *App) registerPageRoutes(rg *gin.RouterGroup, c *controllers) {
	// 路线图
	rg.GET("/roadmap", c.roadmap.GetRoadmap)
	rg.POST("/roadmap/groups/:groupId/tasks/:taskId/toggle", c.roadmap.ToggleTask)

	// 往届档案
	rg.GET("/archive", c.archive.Search)
	rg.GET("/archive/filters", c.archive.Filters)

	// AI 顾问
	rg.GET("/advisor/categories", c.advisor.Categories)
	rg.GET("/advisor/messages", c.advisor.Messages)
	rg.POST("/advisor/messages", c.advisor.Send)
	rg.GET("/advisor/ws", c.advisor.Stream)

	// 仪表盘与个人主页
	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/profile", c.profile.GetProfile)
	rg.PUT("/profile", c.profile.UpdateProfile)
}
