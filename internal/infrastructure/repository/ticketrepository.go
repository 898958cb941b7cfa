package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/infrastructure/persistence/mappers"
	"github.com/katalon/insights/internal/infrastructure/persistence/models"
	"github.com/katalon/insights/internal/shared/db"
	"github.com/katalon/insights/internal/shared/mapper"
)

// TicketRepository is the SQL-backed ticket store (sqlite or mysql).
type TicketRepository struct {
	db *gorm.DB
}

var _ ticket.Repository = (*TicketRepository)(nil)

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var rows []*models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.InsertionOrder("seq")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return mapper.MapSlice(rows, mappers.TicketToDomain), nil
}

func (r *TicketRepository) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	row, err := r.first(db.GetTxFromContext(ctx, r.db), id)
	if err != nil {
		return nil, err
	}
	return mappers.TicketToDomain(row), nil
}

// Create reads the current ids and inserts t inside one transaction.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket, ids ticket.IDGenerator) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&models.TicketModel{}).Scopes(db.InsertionOrder("seq")).Pluck("ticket_id", &existing).Error; err != nil {
			return fmt.Errorf("failed to read ticket ids: %w", err)
		}

		t.ID = ids.NextID(existing)
		if err := tx.Create(mappers.TicketToModel(t)).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		return nil
	})
}

// Update overwrites the first row carrying t.ID.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)
	row, err := r.first(tx, t.ID)
	if err != nil {
		return err
	}

	updated := mappers.TicketToModel(t)
	updated.Seq = row.Seq
	// CreatedAt is immutable; keep the stored value
	updated.CreatedAt = row.CreatedAt
	if err := tx.Save(updated).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

// Delete removes the first row carrying id.
func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	row, err := r.first(tx, id)
	if err != nil {
		return err
	}
	if err := tx.Delete(&models.TicketModel{}, row.Seq).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) first(tx *gorm.DB, id string) (*models.TicketModel, error) {
	var row models.TicketModel
	err := tx.Scopes(db.Matching("ticket_id", id), db.InsertionOrder("seq")).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ticket %s: %w", id, ticket.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return &row, nil
}
