package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/katalon/insights/internal/domain/ticket"
)

// MemoryTicketRepository keeps tickets in a process-local slice. Contents do
// not survive a restart.
type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []*ticket.Ticket
}

var _ ticket.Repository = (*MemoryTicketRepository)(nil)

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{}
}

func (r *MemoryTicketRepository) List(_ context.Context) ([]*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ticket.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *MemoryTicketRepository) Get(_ context.Context, id string) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, err := r.indexOf(id)
	if err != nil {
		return nil, err
	}
	return r.tickets[i].Clone(), nil
}

func (r *MemoryTicketRepository) Create(_ context.Context, t *ticket.Ticket, ids ticket.IDGenerator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := make([]string, 0, len(r.tickets))
	for _, stored := range r.tickets {
		existing = append(existing, stored.ID)
	}
	t.ID = ids.NextID(existing)
	r.tickets = append(r.tickets, t.Clone())
	return nil
}

func (r *MemoryTicketRepository) Update(_ context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexOf(t.ID)
	if err != nil {
		return err
	}
	updated := t.Clone()
	updated.CreatedAt = r.tickets[i].CreatedAt
	r.tickets[i] = updated
	return nil
}

func (r *MemoryTicketRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexOf(id)
	if err != nil {
		return err
	}
	r.tickets = slices.Delete(r.tickets, i, i+1)
	return nil
}

// indexOf returns the first position holding id. Callers hold the lock.
func (r *MemoryTicketRepository) indexOf(id string) (int, error) {
	i := slices.IndexFunc(r.tickets, func(t *ticket.Ticket) bool { return t.ID == id })
	if i < 0 {
		return 0, fmt.Errorf("ticket %s: %w", id, ticket.ErrNotFound)
	}
	return i, nil
}
