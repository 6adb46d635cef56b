package finance

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Transaction, error)
	Get(ctx context.Context, id int) (*Transaction, error)
	Create(ctx context.Context, t *Transaction) (int, error)
	Update(ctx context.Context, t *Transaction) error

	// Since returns all transactions dated on or after the given day.
	Since(ctx context.Context, from time.Time) ([]Transaction, error)
}
