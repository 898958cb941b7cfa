package usecases

import (
	"context"
	"time"

	"github.com/katalon/insights/internal/domain/ticket"
)

type mockTicketRepository struct {
	ListFunc   func(ctx context.Context) ([]*ticket.Ticket, error)
	GetFunc    func(ctx context.Context, id string) (*ticket.Ticket, error)
	CreateFunc func(ctx context.Context, t *ticket.Ticket, ids ticket.IDGenerator) error
	UpdateFunc func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket, ids ticket.IDGenerator) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t, ids)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func sampleTicket(id, subject, product string, created time.Time) *ticket.Ticket {
	return &ticket.Ticket{
		ID:                    id,
		Subject:               subject,
		Description:           "description of " + subject,
		OrganizationID:        ticket.DefaultOrganizationID,
		TimeZone:              ticket.DefaultTimeZone,
		NumberOfAffectedUsers: ticket.DefaultNumberOfAffectedUsers,
		Product:               product,
		TypeOfTesting:         ticket.DefaultTypeOfTesting,
		Environment:           ticket.DefaultEnvironment,
		KatalonVersion:        ticket.DefaultKatalonVersion,
		OtherVersion:          ticket.DefaultOtherVersion,
		CreatedAt:             created,
	}
}
