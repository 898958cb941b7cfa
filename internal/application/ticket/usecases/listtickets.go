package usecases

import (
	"context"
	"time"

	"github.com/katalon/insights/internal/application/ticket/dto"
	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/query"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket in insertion order.
func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]*ticket.Ticket, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, toAppError(err, "list")
	}
	return tickets, nil
}

// TicketViewQuery holds the list view controls. Empty categorical values
// mean "all"; an empty Sort keeps insertion order.
type TicketViewQuery struct {
	Search                string
	Product               string
	TimeZone              string
	TypeOfTesting         string
	NumberOfAffectedUsers string
	KatalonVersion        string
	Sort                  string
	Page                  int
}

type ListTicketViewUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketViewUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketViewUseCase {
	return &ListTicketViewUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketViewUseCase) Execute(ctx context.Context, q TicketViewQuery) (*dto.TicketViewDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, toAppError(err, "list")
	}

	filter := query.NewFilter[*ticket.Ticket]().
		Text(q.Search,
			func(t *ticket.Ticket) string { return t.Subject },
			func(t *ticket.Ticket) string { return t.ID }).
		Category(q.Product, func(t *ticket.Ticket) string { return t.Product }).
		Category(q.TimeZone, func(t *ticket.Ticket) string { return t.TimeZone }).
		Category(q.TypeOfTesting, func(t *ticket.Ticket) string { return t.TypeOfTesting }).
		Category(q.NumberOfAffectedUsers, func(t *ticket.Ticket) string { return t.NumberOfAffectedUsers }).
		Category(q.KatalonVersion, func(t *ticket.Ticket) string { return t.KatalonVersion })

	var (
		sort query.SortSpec[*ticket.Ticket]
		dir  query.Direction
	)
	if q.Sort != "" {
		dir = query.ParseDirection(q.Sort, query.Desc)
		sort = query.ByTime(func(t *ticket.Ticket) time.Time { return t.CreatedAt }, dir)
	}

	page := query.Run(tickets, filter, sort, query.PageRequest{Page: q.Page, Size: constants.TicketPageSize})
	return &dto.TicketViewDTO{
		Page:              page,
		ActiveFilterCount: filter.ActiveCount(),
		State: query.Applied(dir, map[string]string{
			"search":                q.Search,
			"product":               q.Product,
			"timeZone":              q.TimeZone,
			"typeOfTesting":         q.TypeOfTesting,
			"numberOfAffectedUsers": q.NumberOfAffectedUsers,
			"katalonVersion":        q.KatalonVersion,
		}, page.PageMeta),
	}, nil
}
