package contact

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Contact, error)
	Get(ctx context.Context, id int) (*Contact, error)
	Create(ctx context.Context, c *Contact) (int, error)
	Update(ctx context.Context, c *Contact) error

	// RecentProspects returns prospects first contacted on or after the
	// given date, highest priority score first, at most limit rows.
	RecentProspects(ctx context.Context, since time.Time, limit int) ([]Contact, error)
}
