package usecases

import (
	"context"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/logger"
)

type GetTicketQuery struct {
	ID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.Get(ctx, query.ID)
	if err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", query.ID, "error", err)
		return nil, toAppError(err, "get")
	}
	return t, nil
}
