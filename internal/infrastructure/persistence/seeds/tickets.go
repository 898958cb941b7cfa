package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalon/insights/internal/domain/ticket"
)

//go:embed tickets.yaml
var ticketsYAML []byte

type ticketSeed struct {
	ID                    string `yaml:"id"`
	Subject               string `yaml:"subject"`
	Description           string `yaml:"description"`
	OrganizationID        string `yaml:"organization_id"`
	TimeZone              string `yaml:"time_zone"`
	NumberOfAffectedUsers string `yaml:"number_of_affected_users"`
	Product               string `yaml:"product"`
	TypeOfTesting         string `yaml:"type_of_testing"`
	Environment           string `yaml:"environment"`
	KatalonVersion        string `yaml:"katalon_version"`
	OtherVersion          string `yaml:"other_version"`
	ExecutionLog          string `yaml:"execution_log"`
	ErrorLog              string `yaml:"error_log"`
	AffectedWork          string `yaml:"affected_work"`
	AddOtherUser          string `yaml:"add_other_user"`
	CreatedAt             string `yaml:"created_at"`
}

// ReferenceTickets returns fresh copies of TICK-001..TICK-005.
func ReferenceTickets() ([]*ticket.Ticket, error) {
	var rows []ticketSeed
	if err := yaml.Unmarshal(ticketsYAML, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse ticket seeds: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for _, r := range rows {
		createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", r.ID, err)
		}
		tickets = append(tickets, &ticket.Ticket{
			ID:                    r.ID,
			Subject:               r.Subject,
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
			CreatedAt:             createdAt,
		})
	}
	return tickets, nil
}

// fixedIDs hands out the seed's own id on insert.
type fixedIDs string

func (f fixedIDs) NextID([]string) string { return string(f) }

// SeedTickets inserts the reference tickets into an empty repository and
// returns how many were written. A non-empty repository is left alone.
func SeedTickets(ctx context.Context, repo ticket.Repository) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	tickets, err := ReferenceTickets()
	if err != nil {
		return 0, err
	}
	for _, t := range tickets {
		if err := repo.Create(ctx, t, fixedIDs(t.ID)); err != nil {
			return 0, fmt.Errorf("failed to seed %s: %w", t.ID, err)
		}
	}
	return len(tickets), nil
}
