package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context, date time.Time) (*Entry, error)
	Upsert(ctx context.Context, date time.Time, req WriteRequest) (*Entry, error)
	ScoresSince(ctx context.Context, from time.Time) ([]ScorePoint, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "journal_service"),
	}
}

func (s *Service) Get(ctx context.Context, date time.Time) (*Entry, error) {
	e, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get journal entry", "date", date, "error", err)
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return e, nil
}

// Upsert writes the entry for a calendar day. An existence check decides
// between update (reusing the existing row's id) and insert, so a date
// never accumulates duplicates.
func (s *Service) Upsert(ctx context.Context, date time.Time, req WriteRequest) (*Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	entry := s.fromRequest(date, req)

	existing, err := s.repo.GetByDate(ctx, date)
	switch {
	case err == nil:
		entry.ID = existing.ID
		if err := s.repo.Update(ctx, entry); err != nil {
			s.log.Error("failed to update journal entry", "date", date, "error", err)
			return nil, fmt.Errorf("update journal entry: %w", err)
		}
		s.log.Info("journal entry updated", "date", date, "entry_id", entry.ID)
	case errors.Is(err, ErrNotFound):
		id, err := s.repo.Create(ctx, entry)
		if err != nil {
			s.log.Error("failed to create journal entry", "date", date, "error", err)
			return nil, fmt.Errorf("create journal entry: %w", err)
		}
		entry.ID = id
		s.log.Info("journal entry created", "date", date, "entry_id", id)
	default:
		return nil, fmt.Errorf("check existing journal entry: %w", err)
	}

	return entry, nil
}

func (s *Service) ScoresSince(ctx context.Context, from time.Time) ([]ScorePoint, error) {
	points, err := s.repo.ScoresSince(ctx, from)
	if err != nil {
		s.log.Error("failed to load journal scores", "error", err)
		return nil, fmt.Errorf("journal scores: %w", err)
	}
	return points, nil
}

func (s *Service) fromRequest(date time.Time, req WriteRequest) *Entry {
	e := &Entry{
		Date: date,

		OverallScore:      req.OverallScore,
		EnergyScore:       req.EnergyScore,
		WorkScore:         req.WorkScore,
		NutritionScore:    req.NutritionScore,
		SleepScore:        req.SleepScore,
		MindsetScore:      req.MindsetScore,
		RelationshipScore: req.RelationshipScore,
		PeaceScore:        req.PeaceScore,
		LoveScore:         req.LoveScore,
		JoyScore:          req.JoyScore,

		Notes:      nullable(req.Notes),
		Focus:      nullable(req.Focus),
		Gratitude:  nullable(req.Gratitude),
		Intentions: nullable(req.Intentions),

		HoursSleep:   req.HoursSleep,
		SleepQuality: req.SleepQuality,

		Meditation:        req.Meditation,
		MeditationMinutes: req.MeditationMinutes,
		Breathwork:        req.Breathwork,
		ColdShower:        req.ColdShower,
		Sunshine30Min:     req.Sunshine30Min,

		Water2L:    req.Water2L,
		Vegetables: req.Vegetables,
		Fruits:     req.Fruits,
		NoBread:    req.NoBread,
		NoPasta:    req.NoPasta,

		Workout:  req.Workout,
		QuickRun: req.QuickRun,
		Walk:     req.Walk,

		DeepWorkHours: req.DeepWorkHours,
		ClientCalls:   req.ClientCalls,

		Prieres:       req.Prieres,
		Visualisation: req.Visualisation,

		NoPorn:   req.NoPorn,
		NoAlcool: req.NoAlcool,
		NoSmoke:  req.NoSmoke,
	}

	// Minutes only count when the meditation habit is checked.
	if !e.Meditation {
		e.MeditationMinutes = 0
	}
	if e.SleepQuality == "" {
		e.SleepQuality = "good"
	}

	return e
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
