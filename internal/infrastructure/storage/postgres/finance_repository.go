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

	"commandcenter/internal/domain/finance"
)

type FinanceRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFinanceRepository(pool *pgxpool.Pool, log *slog.Logger) *FinanceRepository {
	return &FinanceRepository{
		pool: pool,
		log:  log.With("component", "finance_repository"),
	}
}

const financeColumns = `id, montant, statut, date_transaction, categorie,
	source, notes, created_at`

func (r *FinanceRepository) List(ctx context.Context, filter finance.Filter) ([]finance.Transaction, error) {
	query := `SELECT ` + financeColumns + ` FROM finances WHERE true`

	args := []interface{}{}
	if filter.Statut != "" {
		query += " AND statut = $1"
		args = append(args, filter.Statut)
	}

	query += " ORDER BY date_transaction DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list transactions", "error", err)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	return r.scanTransactions(rows)
}

func (r *FinanceRepository) Get(ctx context.Context, id int) (*finance.Transaction, error) {
	const query = `SELECT ` + financeColumns + ` FROM finances WHERE id = $1`

	t, err := r.scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}
		r.log.Error("failed to get transaction", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return t, nil
}

func (r *FinanceRepository) Create(ctx context.Context, t *finance.Transaction) (int, error) {
	const query = `
		INSERT INTO finances (montant, statut, date_transaction, categorie, source, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		t.Montant, t.Statut, t.DateTransaction, t.Categorie, t.Source, t.Notes,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		r.log.Error("failed to create transaction", "error", err)
		return 0, fmt.Errorf("create transaction: %w", err)
	}

	return t.ID, nil
}

func (r *FinanceRepository) Update(ctx context.Context, t *finance.Transaction) error {
	const query = `
		UPDATE finances
		SET montant = $1, statut = $2, date_transaction = $3,
			categorie = $4, source = $5, notes = $6
		WHERE id = $7`

	result, err := r.pool.Exec(ctx, query,
		t.Montant, t.Statut, t.DateTransaction, t.Categorie, t.Source, t.Notes, t.ID,
	)
	if err != nil {
		r.log.Error("failed to update transaction", "transaction_id", t.ID, "error", err)
		return fmt.Errorf("update transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return finance.ErrNotFound
	}

	return nil
}

func (r *FinanceRepository) Since(ctx context.Context, from time.Time) ([]finance.Transaction, error) {
	const query = `
		SELECT ` + financeColumns + `
		FROM finances
		WHERE date_transaction >= $1
		ORDER BY date_transaction DESC`

	rows, err := r.pool.Query(ctx, query, from)
	if err != nil {
		r.log.Error("failed to list transactions since", "from", from, "error", err)
		return nil, fmt.Errorf("transactions since: %w", err)
	}
	defer rows.Close()

	return r.scanTransactions(rows)
}

func (r *FinanceRepository) scanTransactions(rows pgx.Rows) ([]finance.Transaction, error) {
	var transactions []finance.Transaction

	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}

	return transactions, rows.Err()
}

func (r *FinanceRepository) scanTransaction(row interface {
	Scan(dest ...interface{}) error
}) (*finance.Transaction, error) {
	var t finance.Transaction

	err := row.Scan(
		&t.ID, &t.Montant, &t.Statut, &t.DateTransaction,
		&t.Categorie, &t.Source, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
