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

	"commandcenter/internal/domain/contact"
)

type ContactRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewContactRepository(pool *pgxpool.Pool, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		pool: pool,
		log:  log.With("component", "contact_repository"),
	}
}

const contactColumns = `id, nom_complet, email, telephone, societe, type_contact,
	score_priorite, statut_relation, date_premier_contact, notes, created_at`

func (r *ContactRepository) List(ctx context.Context, filter contact.Filter) ([]contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE true`

	args := []interface{}{}
	argIndex := 1

	if filter.Type != "" {
		query += fmt.Sprintf(" AND type_contact = $%d", argIndex)
		args = append(args, filter.Type)
		argIndex++
	}

	if filter.StatutRelation != "" {
		query += fmt.Sprintf(" AND statut_relation = $%d", argIndex)
		args = append(args, filter.StatutRelation)
		argIndex++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (nom_complet ILIKE $%d OR societe ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += " ORDER BY score_priorite DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list contacts", "error", err)
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *ContactRepository) Get(ctx context.Context, id int) (*contact.Contact, error) {
	const query = `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	c, err := r.scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contact.ErrNotFound
		}
		r.log.Error("failed to get contact", "contact_id", id, "error", err)
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (int, error) {
	const query = `
		INSERT INTO contacts (nom_complet, email, telephone, societe, type_contact,
			score_priorite, statut_relation, date_premier_contact, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		c.NomComplet, c.Email, c.Telephone, c.Societe, c.TypeContact,
		c.ScorePriorite, c.StatutRelation, c.DatePremierContact, c.Notes,
	).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		r.log.Error("failed to create contact", "nom_complet", c.NomComplet, "error", err)
		return 0, fmt.Errorf("create contact: %w", err)
	}

	return c.ID, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	const query = `
		UPDATE contacts
		SET nom_complet = $1, email = $2, telephone = $3, societe = $4,
			type_contact = $5, score_priorite = $6, statut_relation = $7,
			date_premier_contact = $8, notes = $9
		WHERE id = $10`

	result, err := r.pool.Exec(ctx, query,
		c.NomComplet, c.Email, c.Telephone, c.Societe, c.TypeContact,
		c.ScorePriorite, c.StatutRelation, c.DatePremierContact, c.Notes, c.ID,
	)
	if err != nil {
		r.log.Error("failed to update contact", "contact_id", c.ID, "error", err)
		return fmt.Errorf("update contact: %w", err)
	}

	if result.RowsAffected() == 0 {
		return contact.ErrNotFound
	}

	return nil
}

func (r *ContactRepository) RecentProspects(ctx context.Context, since time.Time, limit int) ([]contact.Contact, error) {
	const query = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE type_contact = 'prospect' AND date_premier_contact >= $1
		ORDER BY score_priorite DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		r.log.Error("failed to list recent prospects", "since", since, "error", err)
		return nil, fmt.Errorf("recent prospects: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *ContactRepository) scanContacts(rows pgx.Rows) ([]contact.Contact, error) {
	var contacts []contact.Contact

	for rows.Next() {
		c, err := r.scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}

	return contacts, rows.Err()
}

func (r *ContactRepository) scanContact(row interface {
	Scan(dest ...interface{}) error
}) (*contact.Contact, error) {
	var c contact.Contact

	err := row.Scan(
		&c.ID, &c.NomComplet, &c.Email, &c.Telephone, &c.Societe,
		&c.TypeContact, &c.ScorePriorite, &c.StatutRelation,
		&c.DatePremierContact, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
