package decision

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Decision, error)
	Get(ctx context.Context, id int) (*Decision, error)
	Create(ctx context.Context, d *Decision) (int, error)
	Update(ctx context.Context, d *Decision) error
	Delete(ctx context.Context, id int) error

	// Active returns non-archived decisions with statut active or
	// implementee, newest decision first.
	Active(ctx context.Context, limit int) ([]Decision, error)
}
