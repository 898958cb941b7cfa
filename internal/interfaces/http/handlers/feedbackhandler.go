package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/application/conversation/usecases"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/utils"
)

type FeedbackHandler struct {
	listUC listFeedbackUseCase
	viewUC listFeedbackViewUseCase
	logger logger.Interface
}

func NewFeedbackHandler(listUC listFeedbackUseCase, viewUC listFeedbackViewUseCase, logger logger.Interface) *FeedbackHandler {
	return &FeedbackHandler{listUC: listUC, viewUC: viewUC, logger: logger}
}

// ListFeedback handles GET /api/feedbacks
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ViewFeedback handles GET /api/feedbacks/view
func (h *FeedbackHandler) ViewFeedback(c *gin.Context) {
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

	q := usecases.FeedbackViewQuery{
		Search:    c.Query("search"),
		Type:      utils.ParseCategory(c, "type"),
		Model:     utils.ParseCategory(c, "model"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      utils.ParsePage(c),
	}

	result, err := h.viewUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
