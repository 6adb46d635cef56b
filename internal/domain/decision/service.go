package decision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Find(ctx context.Context, id int) (*Decision, error)
	Create(ctx context.Context, req WriteRequest) (*Decision, error)
	Update(ctx context.Context, id int, req WriteRequest) (*Decision, error)
	Delete(ctx context.Context, id int) error
	Active(ctx context.Context, limit int) ([]Decision, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "decision_service"),
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (ListResponse, error) {
	decisions, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list decisions", "error", err)
		return ListResponse{}, fmt.Errorf("list decisions: %w", err)
	}
	return ListResponse{Decisions: decisions, Total: len(decisions)}, nil
}

func (s *Service) Find(ctx context.Context, id int) (*Decision, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find decision", "decision_id", id, "error", err)
		return nil, fmt.Errorf("find decision: %w", err)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, req WriteRequest) (*Decision, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	d := &Decision{
		Title:         strings.TrimSpace(req.Title),
		Decision:      strings.TrimSpace(req.Decision),
		Context:       nullable(req.Context),
		Rationale:     nullable(req.Rationale),
		AnalyseConcil: nullable(req.AnalyseConcil),
		TypeConcil:    req.TypeConcil,
		Statut:        req.Statut,
		Deadline:      parseDeadline(req.Deadline),
		URLDrive:      nullable(req.URLDrive),
		DecisionDate:  s.now(),
	}
	if d.TypeConcil == "" {
		d.TypeConcil = PetitConcil
	}
	if d.Statut == "" {
		d.Statut = StatusActive
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to create decision", "error", err)
		return nil, fmt.Errorf("create decision: %w", err)
	}
	d.ID = id

	s.log.Info("decision created", "decision_id", id, "type_concil", d.TypeConcil)
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int, req WriteRequest) (*Decision, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get decision for update: %w", err)
	}

	current.Title = strings.TrimSpace(req.Title)
	current.Decision = strings.TrimSpace(req.Decision)
	current.Context = nullable(req.Context)
	current.Rationale = nullable(req.Rationale)
	current.AnalyseConcil = nullable(req.AnalyseConcil)
	current.URLDrive = nullable(req.URLDrive)
	current.Deadline = parseDeadline(req.Deadline)
	if req.TypeConcil != "" {
		current.TypeConcil = req.TypeConcil
	}
	if req.Statut != "" {
		current.Statut = req.Statut
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update decision", "decision_id", id, "error", err)
		return nil, fmt.Errorf("update decision: %w", err)
	}

	s.log.Info("decision updated", "decision_id", id)
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get decision for delete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete decision", "decision_id", id, "error", err)
		return fmt.Errorf("delete decision: %w", err)
	}

	s.log.Info("decision deleted", "decision_id", id)
	return nil
}

func (s *Service) Active(ctx context.Context, limit int) ([]Decision, error) {
	decisions, err := s.repo.Active(ctx, limit)
	if err != nil {
		s.log.Error("failed to load active decisions", "error", err)
		return nil, fmt.Errorf("active decisions: %w", err)
	}
	return decisions, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDeadline(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
