package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/task"
)

type CaptureRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCaptureRepository(pool *pgxpool.Pool, log *slog.Logger) *CaptureRepository {
	return &CaptureRepository{
		pool: pool,
		log:  log.With("component", "capture_repository"),
	}
}

const captureColumns = `id, name, description, priorite, statut, deadline,
	archived, created_at`

func (r *CaptureRepository) List(ctx context.Context, filter task.CaptureFilter) ([]task.Capture, error) {
	query := `SELECT ` + captureColumns + ` FROM captures WHERE archived = false`

	args := []interface{}{}
	if filter.Statut != "" {
		query += " AND statut = $1"
		args = append(args, filter.Statut)
	}

	query += " ORDER BY priorite DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list captures", "error", err)
		return nil, fmt.Errorf("list captures: %w", err)
	}
	defer rows.Close()

	return r.scanCaptures(rows)
}

func (r *CaptureRepository) Get(ctx context.Context, id int) (*task.Capture, error) {
	const query = `SELECT ` + captureColumns + ` FROM captures WHERE id = $1`

	c, err := r.scanCapture(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.ErrNotFound
		}
		r.log.Error("failed to get capture", "capture_id", id, "error", err)
		return nil, fmt.Errorf("get capture: %w", err)
	}

	return c, nil
}

func (r *CaptureRepository) Create(ctx context.Context, c *task.Capture) (int, error) {
	const query = `
		INSERT INTO captures (name, description, priorite, statut, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		c.Name, c.Description, c.Priorite, c.Statut, c.Deadline,
	).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		r.log.Error("failed to create capture", "name", c.Name, "error", err)
		return 0, fmt.Errorf("create capture: %w", err)
	}

	return c.ID, nil
}

func (r *CaptureRepository) Update(ctx context.Context, c *task.Capture) error {
	const query = `
		UPDATE captures
		SET name = $1, description = $2, priorite = $3, statut = $4, deadline = $5
		WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		c.Name, c.Description, c.Priorite, c.Statut, c.Deadline, c.ID,
	)
	if err != nil {
		r.log.Error("failed to update capture", "capture_id", c.ID, "error", err)
		return fmt.Errorf("update capture: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (r *CaptureRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM captures WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete capture", "capture_id", id, "error", err)
		return fmt.Errorf("delete capture: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (r *CaptureRepository) SetStatut(ctx context.Context, id int, statut task.CaptureStatus) error {
	const query = `UPDATE captures SET statut = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, statut, id)
	if err != nil {
		r.log.Error("failed to set capture statut", "capture_id", id, "error", err)
		return fmt.Errorf("set capture statut: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (r *CaptureRepository) Active(ctx context.Context, limit int) ([]task.Capture, error) {
	const query = `
		SELECT ` + captureColumns + `
		FROM captures
		WHERE archived = false AND statut IN ('todo', 'en_cours')
		ORDER BY priorite DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("failed to list active captures", "error", err)
		return nil, fmt.Errorf("active captures: %w", err)
	}
	defer rows.Close()

	return r.scanCaptures(rows)
}

func (r *CaptureRepository) scanCaptures(rows pgx.Rows) ([]task.Capture, error) {
	var captures []task.Capture

	for rows.Next() {
		c, err := r.scanCapture(rows)
		if err != nil {
			return nil, err
		}
		captures = append(captures, *c)
	}

	return captures, rows.Err()
}

func (r *CaptureRepository) scanCapture(row interface {
	Scan(dest ...interface{}) error
}) (*task.Capture, error) {
	var c task.Capture

	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Priorite, &c.Statut,
		&c.Deadline, &c.Archived, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
