package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/project"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewProjectRepository(pool *pgxpool.Pool, log *slog.Logger) *ProjectRepository {
	return &ProjectRepository{
		pool: pool,
		log:  log.With("component", "project_repository"),
	}
}

const projectColumns = `id, name, type_projet, statut, budget, date_start,
	date_end, description, created_at`

func (r *ProjectRepository) List(ctx context.Context, filter project.Filter) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE true`

	args := []interface{}{}
	argIndex := 1

	if filter.TypeProjet != "" {
		query += fmt.Sprintf(" AND type_projet = $%d", argIndex)
		args = append(args, filter.TypeProjet)
		argIndex++
	}

	if filter.Statut != "" {
		query += fmt.Sprintf(" AND statut = $%d", argIndex)
		args = append(args, filter.Statut)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list projects", "error", err)
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	return r.scanProjects(rows)
}

func (r *ProjectRepository) Get(ctx context.Context, id int) (*project.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := r.scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, project.ErrNotFound
		}
		r.log.Error("failed to get project", "project_id", id, "error", err)
		return nil, fmt.Errorf("get project: %w", err)
	}

	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (int, error) {
	const query = `
		INSERT INTO projects (name, type_projet, statut, budget, date_start, date_end, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.TypeProjet, p.Statut, p.Budget, p.DateStart, p.DateEnd, p.Description,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		r.log.Error("failed to create project", "name", p.Name, "error", err)
		return 0, fmt.Errorf("create project: %w", err)
	}

	return p.ID, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	const query = `
		UPDATE projects
		SET name = $1, type_projet = $2, statut = $3, budget = $4,
			date_start = $5, date_end = $6, description = $7
		WHERE id = $8`

	result, err := r.pool.Exec(ctx, query,
		p.Name, p.TypeProjet, p.Statut, p.Budget, p.DateStart, p.DateEnd, p.Description, p.ID,
	)
	if err != nil {
		r.log.Error("failed to update project", "project_id", p.ID, "error", err)
		return fmt.Errorf("update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrNotFound
	}

	return nil
}

func (r *ProjectRepository) scanProjects(rows pgx.Rows) ([]project.Project, error) {
	var projects []project.Project

	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) scanProject(row interface {
	Scan(dest ...interface{}) error
}) (*project.Project, error) {
	var p project.Project

	err := row.Scan(
		&p.ID, &p.Name, &p.TypeProjet, &p.Statut, &p.Budget,
		&p.DateStart, &p.DateEnd, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
