package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/shared/utils"
	"github.com/katalon/insights/internal/shared/version"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthCheck handles GET /health
func HealthCheck(c *gin.Context) {
	utils.OKResponse(c, HealthResponse{Status: "healthy", Version: version.Current()})
}
