package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/katalon/insights/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	// WriteLimit guards the mutating endpoints. Nil disables it.
	WriteLimit gin.HandlerFunc
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	writes := []gin.HandlerFunc{}
	if config.WriteLimit != nil {
		writes = append(writes, config.WriteLimit)
	}

	tickets := api.Group("/tickets")
	{
		// Register specific paths BEFORE parameterized paths
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", append(writes, config.TicketHandler.CreateTicket)...)
		tickets.GET("/view", config.TicketHandler.ViewTickets)
		tickets.GET("/options", config.TicketHandler.GetOptions)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", append(writes, config.TicketHandler.UpdateTicket)...)
		tickets.DELETE("/:id", append(writes, config.TicketHandler.DeleteTicket)...)
	}
}
