package note

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Note, error)
	Get(ctx context.Context, id int) (*Note, error)
	Create(ctx context.Context, n *Note) (int, error)
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id int) error

	// SetFavoris flips the single favoris column without touching the rest
	// of the row.
	SetFavoris(ctx context.Context, id int, favoris bool) error

	// Recent returns the most recently created non-archived notes.
	Recent(ctx context.Context, limit int) ([]Note, error)
}
