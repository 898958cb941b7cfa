package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/interfaces/http/handlers"
)

type ConversationRouteConfig struct {
	ConversationHandler *handlers.ConversationHandler
	FeedbackHandler     *handlers.FeedbackHandler
}

func SetupConversationRoutes(api *gin.RouterGroup, config *ConversationRouteConfig) {
	conversations := api.Group("/conversations")
	{
		conversations.GET("", config.ConversationHandler.ListConversations)
		conversations.GET("/view", config.ConversationHandler.ViewConversations)
		conversations.GET("/:id", config.ConversationHandler.GetConversation)
	}

	messages := api.Group("/messages")
	{
		messages.GET("", config.ConversationHandler.ListMessages)
		// must come before /:id
		messages.GET("/conversation", config.ConversationHandler.ListConversationMessages)
		messages.GET("/:id", config.ConversationHandler.GetMessage)
	}

	feedbacks := api.Group("/feedbacks")
	{
		feedbacks.GET("", config.FeedbackHandler.ListFeedback)
		feedbacks.GET("/view", config.FeedbackHandler.ViewFeedback)
	}
}
