package dto

import (
	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/query"
)

// TicketViewDTO is one page of the ticket list view.
type TicketViewDTO struct {
	query.Page[*ticket.Ticket]
	ActiveFilterCount int             `json:"activeFilterCount"`
	State             query.ViewState `json:"state"`
}
