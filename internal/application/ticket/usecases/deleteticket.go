package usecases

import (
	"context"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/logger"
)

type DeleteTicketCommand struct {
	ID string
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.ID)

	if err := uc.ticketRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Warnw("failed to delete ticket", "ticket_id", cmd.ID, "error", err)
		return toAppError(err, "delete")
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.ID)
	return nil
}
