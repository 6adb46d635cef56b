package task

import (
	"context"
	"time"
)

type TacheRepository interface {
	List(ctx context.Context, filter TacheFilter) ([]Tache, error)
	Get(ctx context.Context, id int) (*Tache, error)
	Create(ctx context.Context, t *Tache) (int, error)
	Update(ctx context.Context, t *Tache) error
	Delete(ctx context.Context, id int) error
	SetStatut(ctx context.Context, id int, statut TacheStatus) error

	// Urgent returns non-done, non-archived taches that are either marked
	// urgent or have a deadline on or before the given date.
	Urgent(ctx context.Context, deadlineBefore time.Time, limit int) ([]Tache, error)
}

type CaptureRepository interface {
	List(ctx context.Context, filter CaptureFilter) ([]Capture, error)
	Get(ctx context.Context, id int) (*Capture, error)
	Create(ctx context.Context, c *Capture) (int, error)
	Update(ctx context.Context, c *Capture) error
	Delete(ctx context.Context, id int) error
	SetStatut(ctx context.Context, id int, statut CaptureStatus) error

	// Active returns non-archived captures in statut todo or en_cours,
	// highest priority first.
	Active(ctx context.Context, limit int) ([]Capture, error)
}
