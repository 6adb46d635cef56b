package journal

import (
	"context"
	"time"
)

type Repository interface {
	// GetByDate returns the entry for the given calendar day, or
	// ErrNotFound when none exists yet.
	GetByDate(ctx context.Context, date time.Time) (*Entry, error)
	Create(ctx context.Context, e *Entry) (int, error)
	Update(ctx context.Context, e *Entry) error

	// ScoresSince returns (date, overall, energy, work) points for all
	// entries on or after the given day, oldest first.
	ScoresSince(ctx context.Context, from time.Time) ([]ScorePoint, error)
}
