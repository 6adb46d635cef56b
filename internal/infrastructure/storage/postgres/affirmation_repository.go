package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/affirmation"
)

type AffirmationRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAffirmationRepository(pool *pgxpool.Pool, log *slog.Logger) *AffirmationRepository {
	return &AffirmationRepository{
		pool: pool,
		log:  log.With("component", "affirmation_repository"),
	}
}

func (r *AffirmationRepository) ListOrdered(ctx context.Context) ([]affirmation.Affirmation, error) {
	const query = `SELECT id, numero, citation FROM affirmations ORDER BY numero ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list affirmations", "error", err)
		return nil, fmt.Errorf("list affirmations: %w", err)
	}
	defer rows.Close()

	var affirmations []affirmation.Affirmation
	for rows.Next() {
		var a affirmation.Affirmation
		if err := rows.Scan(&a.ID, &a.Numero, &a.Citation); err != nil {
			return nil, fmt.Errorf("scan affirmation: %w", err)
		}
		affirmations = append(affirmations, a)
	}

	return affirmations, rows.Err()
}
