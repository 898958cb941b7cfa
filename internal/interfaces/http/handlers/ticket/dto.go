package ticket

import (
	"github.com/katalon/insights/internal/application/ticket/usecases"
	"github.com/katalon/insights/internal/domain/ticket"
)

// CreateTicketRequest is the create payload. Title is accepted in place of
// subject; every other field except description is optional.
type CreateTicketRequest struct {
	Subject               string `json:"subject"`
	Title                 string `json:"title"`
	Description           string `json:"description"`
	OrganizationID        string `json:"organizationId"`
	TimeZone              string `json:"timeZone"`
	NumberOfAffectedUsers string `json:"numberOfAffectedUsers"`
	Product               string `json:"product"`
	TypeOfTesting         string `json:"typeOfTesting"`
	Environment           string `json:"environment"`
	KatalonVersion        string `json:"katalonVersion"`
	OtherVersion          string `json:"otherVersion"`
	ExecutionLog          string `json:"executionLog"`
	ErrorLog              string `json:"errorLog"`
	AffectedWork          string `json:"affectedWork"`
	AddOtherUser          string `json:"addOtherUser"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{Draft: ticket.Draft{
		Subject:               r.Subject,
		Title:                 r.Title,
		Description:           r.Description,
		OrganizationID:        r.OrganizationID,
		TimeZone:              r.TimeZone,
		NumberOfAffectedUsers: r.NumberOfAffectedUsers,
		Product:               r.Product,
		TypeOfTesting:         r.TypeOfTesting,
		Environment:           r.Environment,
		KatalonVersion:        r.KatalonVersion,
		OtherVersion:          r.OtherVersion,
		ExecutionLog:          r.ExecutionLog,
		ErrorLog:              r.ErrorLog,
		AffectedWork:          r.AffectedWork,
		AddOtherUser:          r.AddOtherUser,
	}}
}

// UpdateTicketRequest carries only the fields to change. id and createdAt
// are not part of it and cannot be changed.
type UpdateTicketRequest struct {
	Subject               *string `json:"subject"`
	Title                 *string `json:"title"`
	Description           *string `json:"description"`
	OrganizationID        *string `json:"organizationId"`
	TimeZone              *string `json:"timeZone"`
	NumberOfAffectedUsers *string `json:"numberOfAffectedUsers"`
	Product               *string `json:"product"`
	TypeOfTesting         *string `json:"typeOfTesting"`
	Environment           *string `json:"environment"`
	KatalonVersion        *string `json:"katalonVersion"`
	OtherVersion          *string `json:"otherVersion"`
	ExecutionLog          *string `json:"executionLog"`
	ErrorLog              *string `json:"errorLog"`
	AffectedWork          *string `json:"affectedWork"`
	AddOtherUser          *string `json:"addOtherUser"`
}

func (r UpdateTicketRequest) ToCommand(id string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		ID: id,
		Patch: ticket.Patch{
			Subject:               r.Subject,
			Title:                 r.Title,
			Description:           r.Description,
			OrganizationID:        r.OrganizationID,
			TimeZone:              r.TimeZone,
			NumberOfAffectedUsers: r.NumberOfAffectedUsers,
			Product:               r.Product,
			TypeOfTesting:         r.TypeOfTesting,
			Environment:           r.Environment,
			KatalonVersion:        r.KatalonVersion,
			OtherVersion:          r.OtherVersion,
			ExecutionLog:          r.ExecutionLog,
			ErrorLog:              r.ErrorLog,
			AffectedWork:          r.AffectedWork,
			AddOtherUser:          r.AddOtherUser,
		},
	}
}
