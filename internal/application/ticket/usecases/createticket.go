package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/biztime"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
)

type CreateTicketCommand struct {
	Draft ticket.Draft
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	ids        ticket.IDGenerator
	logger     logger.Interface
	now        func() time.Time
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	ids ticket.IDGenerator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		ids:        ids,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Draft.Subject, "product", cmd.Draft.Product)

	newTicket, err := ticket.NewTicket(cmd.Draft, uc.now())
	if stderrors.Is(err, ticket.ErrMissingFields) {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(constants.ErrMsgTicketFieldsMissing)
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket, uc.ids); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, toAppError(err, "create")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID)
	return newTicket, nil
}
