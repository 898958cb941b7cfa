package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/domain/navigation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/utils"
)

// ReduceRequest carries the client's current tab state and the event to apply.
type ReduceRequest struct {
	State navigation.Shell `json:"state"`
	Event navigation.Event `json:"event"`
}

// NavigationHandler exposes the sidebar tab reducer so every client applies
// the same open/select/close rules.
type NavigationHandler struct {
	logger logger.Interface
}

func NewNavigationHandler(logger logger.Interface) *NavigationHandler {
	return &NavigationHandler{logger: logger}
}

// Reduce handles POST /api/navigation/reduce
func (h *NavigationHandler) Reduce(c *gin.Context) {
	var req ReduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidBody, err.Error()))
		return
	}

	result, err := navigation.Reduce(req.State, req.Event)
	if err != nil {
		h.logger.Debugw("rejected navigation event", "type", req.Event.Type, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	utils.OKResponse(c, result)
}
