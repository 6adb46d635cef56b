package finance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Find(ctx context.Context, id int) (*Transaction, error)
	Create(ctx context.Context, req WriteRequest) (*Transaction, error)
	Update(ctx context.Context, id int, req WriteRequest) (*Transaction, error)
	MonthlyTreasury(ctx context.Context) (Treasury, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "finance_service"),
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (ListResponse, error) {
	transactions, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list transactions", "error", err)
		return ListResponse{}, fmt.Errorf("list transactions: %w", err)
	}
	return ListResponse{Transactions: transactions, Total: len(transactions)}, nil
}

func (s *Service) Find(ctx context.Context, id int) (*Transaction, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find transaction", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return t, nil
}

// Create inserts a transaction. Sign encodes direction: a depense entered
// with a positive montant is stored negated; revenu amounts pass through
// unchanged, even when entered negative.
func (s *Service) Create(ctx context.Context, req WriteRequest) (*Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	t := &Transaction{
		Montant:         normalizeMontant(req.Type, req.Montant),
		Statut:          req.Statut,
		DateTransaction: s.transactionDate(req.DateTransaction),
		Categorie:       nullable(req.Categorie),
		Source:          nullable(req.Source),
		Notes:           nullable(req.Notes),
	}
	if t.Statut == "" {
		t.Statut = StatutRecu
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		s.log.Error("failed to create transaction", "error", err)
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	t.ID = id

	s.log.Info("transaction created", "transaction_id", id, "montant", t.Montant)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int, req WriteRequest) (*Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get transaction for update: %w", err)
	}

	current.Montant = normalizeMontant(req.Type, req.Montant)
	current.Categorie = nullable(req.Categorie)
	current.Source = nullable(req.Source)
	current.Notes = nullable(req.Notes)
	if req.Statut != "" {
		current.Statut = req.Statut
	}
	if req.DateTransaction != "" {
		current.DateTransaction = s.transactionDate(req.DateTransaction)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update transaction", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	s.log.Info("transaction updated", "transaction_id", id)
	return current, nil
}

// MonthlyTreasury sums the current month's settled (reçu/payé)
// transactions, split by sign.
func (s *Service) MonthlyTreasury(ctx context.Context) (Treasury, error) {
	now := s.now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	transactions, err := s.repo.Since(ctx, firstDay)
	if err != nil {
		s.log.Error("failed to load monthly transactions", "error", err)
		return Treasury{}, fmt.Errorf("monthly treasury: %w", err)
	}

	var t Treasury
	for _, tx := range transactions {
		if tx.Statut != StatutRecu && tx.Statut != StatutPaye {
			continue
		}
		if tx.Montant > 0 {
			t.Revenus += tx.Montant
		} else if tx.Montant < 0 {
			t.Depenses += math.Abs(tx.Montant)
		}
	}
	t.Net = t.Revenus - t.Depenses
	return t, nil
}

func normalizeMontant(typ Type, montant float64) float64 {
	if typ == TypeDepense && montant > 0 {
		return -montant
	}
	return montant
}

func (s *Service) transactionDate(date string) time.Time {
	if date == "" {
		return s.now()
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return s.now()
	}
	return t
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
