package project

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
	Find(ctx context.Context, id int) (*Project, error)
	Create(ctx context.Context, req WriteRequest) (*Project, error)
	Update(ctx context.Context, id int, req WriteRequest) (*Project, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "project_service"),
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (ListResponse, error) {
	projects, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list projects", "error", err)
		return ListResponse{}, fmt.Errorf("list projects: %w", err)
	}
	return ListResponse{Projects: projects, Total: len(projects)}, nil
}

func (s *Service) Find(ctx context.Context, id int) (*Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find project", "project_id", id, "error", err)
		return nil, fmt.Errorf("find project: %w", err)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req WriteRequest) (*Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	p := &Project{
		Name:        strings.TrimSpace(req.Name),
		TypeProjet:  req.TypeProjet,
		Statut:      req.Statut,
		Budget:      req.Budget,
		DateStart:   parseDate(req.DateStart),
		DateEnd:     parseDate(req.DateEnd),
		Description: nullable(req.Description),
	}
	if p.TypeProjet == "" {
		p.TypeProjet = TypeDeveloppement
	}
	if p.Statut == "" {
		p.Statut = StatusEnCours
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error("failed to create project", "error", err)
		return nil, fmt.Errorf("create project: %w", err)
	}
	p.ID = id

	s.log.Info("project created", "project_id", id)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, req WriteRequest) (*Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project for update: %w", err)
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Budget = req.Budget
	current.DateStart = parseDate(req.DateStart)
	current.DateEnd = parseDate(req.DateEnd)
	current.Description = nullable(req.Description)
	if req.TypeProjet != "" {
		current.TypeProjet = req.TypeProjet
	}
	if req.Statut != "" {
		current.Statut = req.Statut
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update project", "project_id", id, "error", err)
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.Info("project updated", "project_id", id)
	return current, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
