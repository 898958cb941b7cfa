package ticket

import "context"

// Repository stores tickets in insertion order. Lookups for unknown ids
// return an error wrapping ErrNotFound.
type Repository interface {
	List(ctx context.Context) ([]*Ticket, error)
	Get(ctx context.Context, id string) (*Ticket, error)
	// Create assigns t.ID from ids and appends t.
	Create(ctx context.Context, t *Ticket, ids IDGenerator) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id string) error
}
