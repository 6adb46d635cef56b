package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/decision"
)

type DecisionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewDecisionRepository(pool *pgxpool.Pool, log *slog.Logger) *DecisionRepository {
	return &DecisionRepository{
		pool: pool,
		log:  log.With("component", "decision_repository"),
	}
}

const decisionColumns = `id, title, decision, context, rationale, analyse_concil,
	type_concil, statut, deadline, url_drive, decision_date, archived, created_at`

func (r *DecisionRepository) List(ctx context.Context, filter decision.Filter) ([]decision.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE archived = false`

	args := []interface{}{}
	argIndex := 1

	if filter.TypeConcil != "" {
		query += fmt.Sprintf(" AND type_concil = $%d", argIndex)
		args = append(args, filter.TypeConcil)
		argIndex++
	}

	if filter.Statut != "" {
		query += fmt.Sprintf(" AND statut = $%d", argIndex)
		args = append(args, filter.Statut)
		argIndex++
	}

	query += " ORDER BY decision_date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list decisions", "error", err)
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	return r.scanDecisions(rows)
}

func (r *DecisionRepository) Get(ctx context.Context, id int) (*decision.Decision, error) {
	const query = `SELECT ` + decisionColumns + ` FROM decisions WHERE id = $1`

	d, err := r.scanDecision(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, decision.ErrNotFound
		}
		r.log.Error("failed to get decision", "decision_id", id, "error", err)
		return nil, fmt.Errorf("get decision: %w", err)
	}

	return d, nil
}

func (r *DecisionRepository) Create(ctx context.Context, d *decision.Decision) (int, error) {
	const query = `
		INSERT INTO decisions (title, decision, context, rationale, analyse_concil,
			type_concil, statut, deadline, url_drive, decision_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		d.Title, d.Decision, d.Context, d.Rationale, d.AnalyseConcil,
		d.TypeConcil, d.Statut, d.Deadline, d.URLDrive, d.DecisionDate,
	).Scan(&d.ID, &d.CreatedAt)

	if err != nil {
		r.log.Error("failed to create decision", "title", d.Title, "error", err)
		return 0, fmt.Errorf("create decision: %w", err)
	}

	return d.ID, nil
}

func (r *DecisionRepository) Update(ctx context.Context, d *decision.Decision) error {
	const query = `
		UPDATE decisions
		SET title = $1, decision = $2, context = $3, rationale = $4,
			analyse_concil = $5, type_concil = $6, statut = $7,
			deadline = $8, url_drive = $9, decision_date = $10
		WHERE id = $11`

	result, err := r.pool.Exec(ctx, query,
		d.Title, d.Decision, d.Context, d.Rationale, d.AnalyseConcil,
		d.TypeConcil, d.Statut, d.Deadline, d.URLDrive, d.DecisionDate, d.ID,
	)
	if err != nil {
		r.log.Error("failed to update decision", "decision_id", d.ID, "error", err)
		return fmt.Errorf("update decision: %w", err)
	}

	if result.RowsAffected() == 0 {
		return decision.ErrNotFound
	}

	return nil
}

func (r *DecisionRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM decisions WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete decision", "decision_id", id, "error", err)
		return fmt.Errorf("delete decision: %w", err)
	}

	if result.RowsAffected() == 0 {
		return decision.ErrNotFound
	}

	return nil
}

func (r *DecisionRepository) Active(ctx context.Context, limit int) ([]decision.Decision, error) {
	const query = `
		SELECT ` + decisionColumns + `
		FROM decisions
		WHERE archived = false AND statut IN ('active', 'implementee')
		ORDER BY decision_date DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("failed to list active decisions", "error", err)
		return nil, fmt.Errorf("active decisions: %w", err)
	}
	defer rows.Close()

	return r.scanDecisions(rows)
}

func (r *DecisionRepository) scanDecisions(rows pgx.Rows) ([]decision.Decision, error) {
	var decisions []decision.Decision

	for rows.Next() {
		d, err := r.scanDecision(rows)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, *d)
	}

	return decisions, rows.Err()
}

func (r *DecisionRepository) scanDecision(row interface {
	Scan(dest ...interface{}) error
}) (*decision.Decision, error) {
	var d decision.Decision

	err := row.Scan(
		&d.ID, &d.Title, &d.Decision, &d.Context, &d.Rationale, &d.AnalyseConcil,
		&d.TypeConcil, &d.Statut, &d.Deadline, &d.URLDrive, &d.DecisionDate,
		&d.Archived, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
