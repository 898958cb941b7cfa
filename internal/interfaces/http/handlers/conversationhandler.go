package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/application/conversation/usecases"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/query"
	"github.com/katalon/insights/internal/shared/utils"
)

// ConversationHandler serves conversations and their messages.
type ConversationHandler struct {
	listUC     listConversationsUseCase
	viewUC     listConversationViewUseCase
	detailUC   getConversationDetailUseCase
	messagesUC messagesUseCase
	logger     logger.Interface
}

func NewConversationHandler(
	listUC listConversationsUseCase,
	viewUC listConversationViewUseCase,
	detailUC getConversationDetailUseCase,
	messagesUC messagesUseCase,
	logger logger.Interface,
) *ConversationHandler {
	return &ConversationHandler{
		listUC:     listUC,
		viewUC:     viewUC,
		detailUC:   detailUC,
		messagesUC: messagesUC,
		logger:     logger,
	}
}

// ListConversations handles GET /api/conversations
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ViewConversations handles GET /api/conversations/view
func (h *ConversationHandler) ViewConversations(c *gin.Context) {
	startDate, err := utils.ParseDateParam(c, "startDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := utils.ParseDateParam(c, "endDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q := usecases.ConversationViewQuery{
		Search:    c.Query("search"),
		StartDate: startDate,
		EndDate:   endDate,
		Sort:      query.ParseDirection(c.Query("sort"), query.Desc),
		Page:      utils.ParsePage(c),
	}

	result, err := h.viewUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetConversation handles GET /api/conversations/:id
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	q := usecases.GetConversationDetailQuery{
		ConversationID: c.Param("id"),
		Search:         c.Query("search"),
	}

	result, err := h.detailUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListMessages handles GET /api/messages
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	result, err := h.messagesUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListConversationMessages handles GET /api/messages/conversation?conversationId=
func (h *ConversationHandler) ListConversationMessages(c *gin.Context) {
	result, err := h.messagesUC.ListByConversation(c.Request.Context(), c.Query("conversationId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetMessage handles GET /api/messages/:id
func (h *ConversationHandler) GetMessage(c *gin.Context) {
	result, err := h.messagesUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
