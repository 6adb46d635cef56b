package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/task"
)

type TacheRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTacheRepository(pool *pgxpool.Pool, log *slog.Logger) *TacheRepository {
	return &TacheRepository{
		pool: pool,
		log:  log.With("component", "tache_repository"),
	}
}

const tacheColumns = `id, name, entree, notes, priorite, statut, deadline,
	url_drive, archived, created_at`

func (r *TacheRepository) List(ctx context.Context, filter task.TacheFilter) ([]task.Tache, error) {
	query := `SELECT ` + tacheColumns + ` FROM taches WHERE archived = false`

	args := []interface{}{}
	argIndex := 1

	if filter.Statut != "" {
		query += fmt.Sprintf(" AND statut = $%d", argIndex)
		args = append(args, filter.Statut)
		argIndex++
	}

	if filter.Priorite != "" {
		query += fmt.Sprintf(" AND priorite = $%d", argIndex)
		args = append(args, filter.Priorite)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list taches", "error", err)
		return nil, fmt.Errorf("list taches: %w", err)
	}
	defer rows.Close()

	return r.scanTaches(rows)
}

func (r *TacheRepository) Get(ctx context.Context, id int) (*task.Tache, error) {
	const query = `SELECT ` + tacheColumns + ` FROM taches WHERE id = $1`

	t, err := r.scanTache(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.ErrNotFound
		}
		r.log.Error("failed to get tache", "tache_id", id, "error", err)
		return nil, fmt.Errorf("get tache: %w", err)
	}

	return t, nil
}

func (r *TacheRepository) Create(ctx context.Context, t *task.Tache) (int, error) {
	const query = `
		INSERT INTO taches (name, entree, notes, priorite, statut, deadline, url_drive)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		t.Name, t.Entree, t.Notes, t.Priorite, t.Statut, t.Deadline, t.URLDrive,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		r.log.Error("failed to create tache", "name", t.Name, "error", err)
		return 0, fmt.Errorf("create tache: %w", err)
	}

	return t.ID, nil
}

func (r *TacheRepository) Update(ctx context.Context, t *task.Tache) error {
	const query = `
		UPDATE taches
		SET name = $1, entree = $2, notes = $3, priorite = $4,
			statut = $5, deadline = $6, url_drive = $7
		WHERE id = $8`

	result, err := r.pool.Exec(ctx, query,
		t.Name, t.Entree, t.Notes, t.Priorite, t.Statut, t.Deadline, t.URLDrive, t.ID,
	)
	if err != nil {
		r.log.Error("failed to update tache", "tache_id", t.ID, "error", err)
		return fmt.Errorf("update tache: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (r *TacheRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM taches WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete tache", "tache_id", id, "error", err)
		return fmt.Errorf("delete tache: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (r *TacheRepository) SetStatut(ctx context.Context, id int, statut task.TacheStatus) error {
	const query = `UPDATE taches SET statut = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, statut, id)
	if err != nil {
		r.log.Error("failed to set tache statut", "tache_id", id, "error", err)
		return fmt.Errorf("set tache statut: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (r *TacheRepository) Urgent(ctx context.Context, deadlineBefore time.Time, limit int) ([]task.Tache, error) {
	const query = `
		SELECT ` + tacheColumns + `
		FROM taches
		WHERE archived = false AND statut <> 'terminee'
			AND (priorite = 'urgent' OR deadline <= $1)
		ORDER BY deadline ASC NULLS LAST
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, deadlineBefore, limit)
	if err != nil {
		r.log.Error("failed to list urgent taches", "error", err)
		return nil, fmt.Errorf("urgent taches: %w", err)
	}
	defer rows.Close()

	return r.scanTaches(rows)
}

func (r *TacheRepository) scanTaches(rows pgx.Rows) ([]task.Tache, error) {
	var taches []task.Tache

	for rows.Next() {
		t, err := r.scanTache(rows)
		if err != nil {
			return nil, err
		}
		taches = append(taches, *t)
	}

	return taches, rows.Err()
}

func (r *TacheRepository) scanTache(row interface {
	Scan(dest ...interface{}) error
}) (*task.Tache, error) {
	var t task.Tache

	err := row.Scan(
		&t.ID, &t.Name, &t.Entree, &t.Notes, &t.Priorite, &t.Statut,
		&t.Deadline, &t.URLDrive, &t.Archived, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
