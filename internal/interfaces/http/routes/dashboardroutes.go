package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/interfaces/http/handlers"
)

type DashboardRouteConfig struct {
	DashboardHandler  *handlers.DashboardHandler
	NavigationHandler *handlers.NavigationHandler
}

func SetupDashboardRoutes(api *gin.RouterGroup, config *DashboardRouteConfig) {
	api.GET("/dashboard/stats", config.DashboardHandler.GetStats)
	api.POST("/navigation/reduce", config.NavigationHandler.Reduce)
}
