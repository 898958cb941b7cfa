package usecases

import (
	"context"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/logger"
)

type UpdateTicketCommand struct {
	ID    string
	Patch ticket.Patch
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute merges the fields present in the patch into the stored ticket and
// returns the result.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.ID)

	t, err := uc.ticketRepo.Get(ctx, cmd.ID)
	if err != nil {
		uc.logger.Warnw("ticket to update not found", "ticket_id", cmd.ID, "error", err)
		return nil, toAppError(err, "get")
	}

	t.Apply(cmd.Patch)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.ID, "error", err)
		return nil, toAppError(err, "update")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.ID)
	return t, nil
}
