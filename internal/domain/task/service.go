package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type TacheService struct {
	repo TacheRepository
	log  *slog.Logger
}

func NewTacheService(repo TacheRepository, log *slog.Logger) *TacheService {
	return &TacheService{
		repo: repo,
		log:  log.With("component", "tache_service"),
	}
}

func (s *TacheService) List(ctx context.Context, filter TacheFilter) (TacheListResponse, error) {
	taches, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list taches", "error", err)
		return TacheListResponse{}, fmt.Errorf("list taches: %w", err)
	}
	return TacheListResponse{Taches: taches, Total: len(taches)}, nil
}

func (s *TacheService) Find(ctx context.Context, id int) (*Tache, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find tache", "tache_id", id, "error", err)
		return nil, fmt.Errorf("find tache: %w", err)
	}
	return t, nil
}

func (s *TacheService) Create(ctx context.Context, req TacheRequest) (*Tache, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	t := &Tache{
		Name:     strings.TrimSpace(req.Name),
		Entree:   nullable(req.Entree),
		Notes:    nullable(req.Notes),
		Priorite: req.Priorite,
		Statut:   req.Statut,
		Deadline: parseDeadline(req.Deadline),
		URLDrive: nullable(req.URLDrive),
	}
	if t.Priorite == "" {
		t.Priorite = PrioriteStandard
	}
	if t.Statut == "" {
		t.Statut = TacheNonDebutee
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		s.log.Error("failed to create tache", "error", err)
		return nil, fmt.Errorf("create tache: %w", err)
	}
	t.ID = id

	s.log.Info("tache created", "tache_id", id, "priorite", t.Priorite)
	return t, nil
}

func (s *TacheService) Update(ctx context.Context, id int, req TacheRequest) (*Tache, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tache for update: %w", err)
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Entree = nullable(req.Entree)
	current.Notes = nullable(req.Notes)
	current.URLDrive = nullable(req.URLDrive)
	current.Deadline = parseDeadline(req.Deadline)
	if req.Priorite != "" {
		current.Priorite = req.Priorite
	}
	if req.Statut != "" {
		current.Statut = req.Statut
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update tache", "tache_id", id, "error", err)
		return nil, fmt.Errorf("update tache: %w", err)
	}

	s.log.Info("tache updated", "tache_id", id)
	return current, nil
}

func (s *TacheService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get tache for delete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete tache", "tache_id", id, "error", err)
		return fmt.Errorf("delete tache: %w", err)
	}

	s.log.Info("tache deleted", "tache_id", id)
	return nil
}

// ToggleStatus flips terminee back to non_debutee and anything else to
// terminee, matching the one-click completion toggle of the task board.
func (s *TacheService) ToggleStatus(ctx context.Context, id int) (*Tache, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tache for toggle: %w", err)
	}

	next := TacheTerminee
	if current.Statut == TacheTerminee {
		next = TacheNonDebutee
	}
	if err := s.repo.SetStatut(ctx, id, next); err != nil {
		s.log.Error("failed to toggle tache status", "tache_id", id, "error", err)
		return nil, fmt.Errorf("toggle tache status: %w", err)
	}

	return s.repo.Get(ctx, id)
}

// Urgent returns taches needing attention: marked urgent, or deadline
// within the given number of days.
func (s *TacheService) Urgent(ctx context.Context, withinDays, limit int) ([]Tache, error) {
	deadline := time.Now().AddDate(0, 0, withinDays)
	taches, err := s.repo.Urgent(ctx, deadline, limit)
	if err != nil {
		s.log.Error("failed to load urgent taches", "error", err)
		return nil, fmt.Errorf("urgent taches: %w", err)
	}
	return taches, nil
}

type CaptureService struct {
	repo CaptureRepository
	log  *slog.Logger
}

func NewCaptureService(repo CaptureRepository, log *slog.Logger) *CaptureService {
	return &CaptureService{
		repo: repo,
		log:  log.With("component", "capture_service"),
	}
}

func (s *CaptureService) List(ctx context.Context, filter CaptureFilter) (CaptureListResponse, error) {
	captures, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list captures", "error", err)
		return CaptureListResponse{}, fmt.Errorf("list captures: %w", err)
	}
	return CaptureListResponse{Captures: captures, Total: len(captures)}, nil
}

func (s *CaptureService) Find(ctx context.Context, id int) (*Capture, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find capture", "capture_id", id, "error", err)
		return nil, fmt.Errorf("find capture: %w", err)
	}
	return c, nil
}

func (s *CaptureService) Create(ctx context.Context, req CaptureRequest) (*Capture, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	c := &Capture{
		Name:        strings.TrimSpace(req.Name),
		Description: nullable(req.Description),
		Priorite:    req.Priorite,
		Statut:      req.Statut,
		Deadline:    parseDeadline(req.Deadline),
	}
	if c.Statut == "" {
		c.Statut = CaptureTodo
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error("failed to create capture", "error", err)
		return nil, fmt.Errorf("create capture: %w", err)
	}
	c.ID = id

	s.log.Info("capture created", "capture_id", id)
	return c, nil
}

func (s *CaptureService) Update(ctx context.Context, id int, req CaptureRequest) (*Capture, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get capture for update: %w", err)
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Description = nullable(req.Description)
	current.Priorite = req.Priorite
	current.Deadline = parseDeadline(req.Deadline)
	if req.Statut != "" {
		current.Statut = req.Statut
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update capture", "capture_id", id, "error", err)
		return nil, fmt.Errorf("update capture: %w", err)
	}

	s.log.Info("capture updated", "capture_id", id)
	return current, nil
}

func (s *CaptureService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get capture for delete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete capture", "capture_id", id, "error", err)
		return fmt.Errorf("delete capture: %w", err)
	}

	s.log.Info("capture deleted", "capture_id", id)
	return nil
}

// ToggleStatus flips done back to todo and anything else to done.
func (s *CaptureService) ToggleStatus(ctx context.Context, id int) (*Capture, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get capture for toggle: %w", err)
	}

	next := CaptureDone
	if current.Statut == CaptureDone {
		next = CaptureTodo
	}
	if err := s.repo.SetStatut(ctx, id, next); err != nil {
		s.log.Error("failed to toggle capture status", "capture_id", id, "error", err)
		return nil, fmt.Errorf("toggle capture status: %w", err)
	}

	return s.repo.Get(ctx, id)
}

// Active returns the in-flight captures shown on the dashboard.
func (s *CaptureService) Active(ctx context.Context, limit int) ([]Capture, error) {
	captures, err := s.repo.Active(ctx, limit)
	if err != nil {
		s.log.Error("failed to load active captures", "error", err)
		return nil, fmt.Errorf("active captures: %w", err)
	}
	return captures, nil
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
