package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/note"
)

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

const noteColumns = `id, title, content, notes_supplementaires, url_drive,
	favoris, archived, created_at, updated_at`

func (r *NoteRepository) List(ctx context.Context, filter note.Filter) ([]note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE archived = false`

	args := []interface{}{}
	if filter.Search != "" {
		query += " AND (title ILIKE $1 OR content ILIKE $1)"
		args = append(args, "%"+filter.Search+"%")
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list notes", "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return r.scanNotes(rows)
}

func (r *NoteRepository) Get(ctx context.Context, id int) (*note.Note, error) {
	const query = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	n, err := r.scanNote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, note.ErrNotFound
		}
		r.log.Error("failed to get note", "note_id", id, "error", err)
		return nil, fmt.Errorf("get note: %w", err)
	}

	return n, nil
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) (int, error) {
	const query = `
		INSERT INTO notes (title, content, notes_supplementaires, url_drive, favoris)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		n.Title, n.Content, n.NotesSupplementaires, n.URLDrive, n.Favoris,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		r.log.Error("failed to create note", "error", err)
		return 0, fmt.Errorf("create note: %w", err)
	}

	return n.ID, nil
}

func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	const query = `
		UPDATE notes
		SET title = $1, content = $2, notes_supplementaires = $3,
			url_drive = $4, favoris = $5, updated_at = NOW()
		WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		n.Title, n.Content, n.NotesSupplementaires, n.URLDrive, n.Favoris, n.ID,
	)
	if err != nil {
		r.log.Error("failed to update note", "note_id", n.ID, "error", err)
		return fmt.Errorf("update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM notes WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete note", "note_id", id, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) SetFavoris(ctx context.Context, id int, favoris bool) error {
	const query = `UPDATE notes SET favoris = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, favoris, id)
	if err != nil {
		r.log.Error("failed to set favoris", "note_id", id, "error", err)
		return fmt.Errorf("set favoris: %w", err)
	}

	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) Recent(ctx context.Context, limit int) ([]note.Note, error) {
	const query = `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE archived = false
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("failed to list recent notes", "error", err)
		return nil, fmt.Errorf("recent notes: %w", err)
	}
	defer rows.Close()

	return r.scanNotes(rows)
}

func (r *NoteRepository) scanNotes(rows pgx.Rows) ([]note.Note, error) {
	var notes []note.Note

	for rows.Next() {
		n, err := r.scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}

	return notes, rows.Err()
}

func (r *NoteRepository) scanNote(row interface {
	Scan(dest ...interface{}) error
}) (*note.Note, error) {
	var n note.Note

	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.NotesSupplementaires, &n.URLDrive,
		&n.Favoris, &n.Archived, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &n, nil
}
