package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/application/ticket/usecases"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	listViewUC     usecases.ListTicketViewExecutor
	optionsUC      usecases.GetTicketOptionsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listViewUC usecases.ListTicketViewExecutor,
	optionsUC usecases.GetTicketOptionsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		listTicketsUC:  listTicketsUC,
		listViewUC:     listViewUC,
		optionsUC:      optionsUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidBody, err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ViewTickets handles GET /api/tickets/view
func (h *TicketHandler) ViewTickets(c *gin.Context) {
	q := usecases.TicketViewQuery{
		Search:                c.Query("search"),
		Product:               utils.ParseCategory(c, "product"),
		TimeZone:              utils.ParseCategory(c, "timeZone"),
		TypeOfTesting:         utils.ParseCategory(c, "typeOfTesting"),
		NumberOfAffectedUsers: utils.ParseCategory(c, "numberOfAffectedUsers"),
		KatalonVersion:        utils.ParseCategory(c, "katalonVersion"),
		Sort:                  c.Query("sort"),
		Page:                  utils.ParsePage(c),
	}

	result, err := h.listViewUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetOptions handles GET /api/tickets/options
func (h *TicketHandler) GetOptions(c *gin.Context) {
	result, err := h.optionsUC.Execute()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{ID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateTicket handles PUT /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", c.Param("id"), "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidBody, err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{ID: c.Param("id")}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, constants.ErrMsgTicketDeleted)
}
