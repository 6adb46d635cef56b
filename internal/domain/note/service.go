package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Find(ctx context.Context, id int) (*Note, error)
	Create(ctx context.Context, req WriteRequest) (*Note, error)
	Update(ctx context.Context, id int, req WriteRequest) (*Note, error)
	Delete(ctx context.Context, id int) error
	ToggleFavoris(ctx context.Context, id int) (*Note, error)
	Recent(ctx context.Context, limit int) ([]Note, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (ListResponse, error) {
	notes, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list notes", "error", err)
		return ListResponse{}, fmt.Errorf("list notes: %w", err)
	}
	return ListResponse{Notes: notes, Total: len(notes)}, nil
}

func (s *Service) Find(ctx context.Context, id int) (*Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find note", "note_id", id, "error", err)
		return nil, fmt.Errorf("find note: %w", err)
	}
	return n, nil
}

func (s *Service) Create(ctx context.Context, req WriteRequest) (*Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	n := &Note{
		Title:                nullable(req.Title),
		Content:              strings.TrimSpace(req.Content),
		NotesSupplementaires: nullable(req.NotesSupplementaires),
		URLDrive:             nullable(req.URLDrive),
		Favoris:              req.Favoris,
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		s.log.Error("failed to create note", "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}
	n.ID = id

	s.log.Info("note created", "note_id", id)
	return n, nil
}

func (s *Service) Update(ctx context.Context, id int, req WriteRequest) (*Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get note for update: %w", err)
	}

	current.Title = nullable(req.Title)
	current.Content = strings.TrimSpace(req.Content)
	current.NotesSupplementaires = nullable(req.NotesSupplementaires)
	current.URLDrive = nullable(req.URLDrive)
	current.Favoris = req.Favoris

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update note", "note_id", id, "error", err)
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.Info("note updated", "note_id", id)
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get note for delete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete note", "note_id", id, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_id", id)
	return nil
}

// ToggleFavoris flips the favorite flag with a single-column update, then
// reloads the full record.
func (s *Service) ToggleFavoris(ctx context.Context, id int) (*Note, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get note for toggle: %w", err)
	}

	if err := s.repo.SetFavoris(ctx, id, !current.Favoris); err != nil {
		s.log.Error("failed to toggle favoris", "note_id", id, "error", err)
		return nil, fmt.Errorf("toggle favoris: %w", err)
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Note, error) {
	notes, err := s.repo.Recent(ctx, limit)
	if err != nil {
		s.log.Error("failed to load recent notes", "error", err)
		return nil, fmt.Errorf("recent notes: %w", err)
	}
	return notes, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
