package usecases

import (
	"context"

	"github.com/katalon/insights/internal/application/ticket/dto"
	"github.com/katalon/insights/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) ([]*ticket.Ticket, error)
}

type ListTicketViewExecutor interface {
	Execute(ctx context.Context, query TicketViewQuery) (*dto.TicketViewDTO, error)
}

type GetTicketOptionsExecutor interface {
	Execute() (*ticket.Options, error)
}
