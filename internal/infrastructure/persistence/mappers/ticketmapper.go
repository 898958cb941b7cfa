package mappers

import (
	"time"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/infrastructure/persistence/models"
)

// TicketToModel copies t into a new row. Seq is left for the database.
func TicketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		TicketID:              t.ID,
		Subject:               t.Subject,
		Description:           t.Description,
		OrganizationID:        t.OrganizationID,
		TimeZone:              t.TimeZone,
		NumberOfAffectedUsers: t.NumberOfAffectedUsers,
		Product:               t.Product,
		TypeOfTesting:         t.TypeOfTesting,
		Environment:           t.Environment,
		KatalonVersion:        t.KatalonVersion,
		OtherVersion:          t.OtherVersion,
		ExecutionLog:          t.ExecutionLog,
		ErrorLog:              t.ErrorLog,
		AffectedWork:          t.AffectedWork,
		AddOtherUser:          t.AddOtherUser,
		CreatedAt:             t.CreatedAt.UnixMilli(),
	}
}

func TicketToDomain(m *models.TicketModel) *ticket.Ticket {
	return &ticket.Ticket{
		ID:                    m.TicketID,
		Subject:               m.Subject,
		Description:           m.Description,
		OrganizationID:        m.OrganizationID,
		TimeZone:              m.TimeZone,
		NumberOfAffectedUsers: m.NumberOfAffectedUsers,
		Product:               m.Product,
		TypeOfTesting:         m.TypeOfTesting,
		Environment:           m.Environment,
		KatalonVersion:        m.KatalonVersion,
		OtherVersion:          m.OtherVersion,
		ExecutionLog:          m.ExecutionLog,
		ErrorLog:              m.ErrorLog,
		AffectedWork:          m.AffectedWork,
		AddOtherUser:          m.AddOtherUser,
		CreatedAt:             time.UnixMilli(m.CreatedAt).UTC(),
	}
}
