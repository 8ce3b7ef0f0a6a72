package routes

import (
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует HTML-страницы, health, админ API и swagger.
// adminAuth навешивается на все /api/v1/admin/* кроме логина.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	adminAuth gin.HandlerFunc,
) {
	// Публичный сайт
	appHandlers.PageHandler.RegisterRoutes(&ginRouter.RouterGroup)
	appHandlers.HealthHandler.RegisterRoutes(&ginRouter.RouterGroup)

	// Админ API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		admin := api.Group("/admin")
		admin.Use(adminAuth)
		{
			appHandlers.ExperienceHandler.RegisterRoutes(admin)
			appHandlers.EducationHandler.RegisterRoutes(admin)
			appHandlers.ProjectHandler.RegisterRoutes(admin)
			appHandlers.ServiceHandler.RegisterRoutes(admin)
			appHandlers.ContactHandler.RegisterRoutes(admin)
			appHandlers.FileHandler.RegisterRoutes(admin)
		}
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Info("Routes registered", "count", len(ginRouter.Routes()))
}
