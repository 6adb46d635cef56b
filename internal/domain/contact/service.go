package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const defaultScorePriorite = 5

type Servicer interface {
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Find(ctx context.Context, id int) (*Contact, error)
	Create(ctx context.Context, req CreateRequest) (*Contact, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Contact, error)
	RecentProspects(ctx context.Context, since time.Time, limit int) ([]Contact, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "contact_service"),
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (ListResponse, error) {
	contacts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list contacts", "error", err)
		return ListResponse{}, fmt.Errorf("list contacts: %w", err)
	}
	return ListResponse{Contacts: contacts, Total: len(contacts)}, nil
}

func (s *Service) Find(ctx context.Context, id int) (*Contact, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find contact", "contact_id", id, "error", err)
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return c, nil
}

// Create inserts a new contact. Missing type, score and relation status
// fall back to prospect / 5 / actif, and the first-contact date is the
// submission date.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	c := &Contact{
		NomComplet:         strings.TrimSpace(req.NomComplet),
		Email:              nullable(req.Email),
		Telephone:          nullable(req.Telephone),
		Societe:            nullable(req.Societe),
		TypeContact:        req.TypeContact,
		ScorePriorite:      defaultScorePriorite,
		StatutRelation:     RelationActif,
		DatePremierContact: s.now(),
		Notes:              nullable(req.Notes),
	}
	if c.TypeContact == "" {
		c.TypeContact = TypeProspect
	}
	if req.ScorePriorite != nil {
		c.ScorePriorite = *req.ScorePriorite
	}
	if req.StatutRelation != "" {
		c.StatutRelation = RelationStatus(req.StatutRelation)
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error("failed to create contact", "error", err)
		return nil, fmt.Errorf("create contact: %w", err)
	}
	c.ID = id

	s.log.Info("contact created", "contact_id", id, "type", c.TypeContact)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get contact for update: %w", err)
	}

	current.NomComplet = strings.TrimSpace(req.NomComplet)
	current.Email = nullable(req.Email)
	current.Telephone = nullable(req.Telephone)
	current.Societe = nullable(req.Societe)
	current.Notes = nullable(req.Notes)
	if req.TypeContact != "" {
		current.TypeContact = req.TypeContact
	}
	if req.ScorePriorite != nil {
		current.ScorePriorite = *req.ScorePriorite
	}
	if req.StatutRelation != "" {
		current.StatutRelation = RelationStatus(req.StatutRelation)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update contact", "contact_id", id, "error", err)
		return nil, fmt.Errorf("update contact: %w", err)
	}

	s.log.Info("contact updated", "contact_id", id)
	return current, nil
}

func (s *Service) RecentProspects(ctx context.Context, since time.Time, limit int) ([]Contact, error) {
	contacts, err := s.repo.RecentProspects(ctx, since, limit)
	if err != nil {
		s.log.Error("failed to load recent prospects", "error", err)
		return nil, fmt.Errorf("recent prospects: %w", err)
	}
	return contacts, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
