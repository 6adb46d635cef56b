package affirmation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/slog"
)

// Keys of the rotation cache in the state store.
const (
	keyDate  = "punchline_date"
	keyText  = "punchline_text"
	keyIndex = "punchline_index"
)

type Servicer interface {
	Today(ctx context.Context) (Quote, error)
	Next(ctx context.Context) (Quote, error)
}

// Service picks the quote of the day. Two indices coexist on purpose: the
// deterministic day-of-year index and a manually advanced override. The
// override wins until the cached date no longer matches today, at which
// point the deterministic formula takes over again.
type Service struct {
	repo  Repository
	state StateStore
	log   *slog.Logger
	now   func() time.Time
}

func NewService(repo Repository, state StateStore, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		state: state,
		log:   log.With("component", "affirmation_service"),
		now:   time.Now,
	}
}

// Today returns the cached quote when one was already picked for the
// current date, without touching the store; otherwise it selects
// affirmations[dayOfYear mod N] and caches it.
func (s *Service) Today(ctx context.Context) (Quote, error) {
	dateKey := s.now().Format("2006-01-02")

	if cachedDate, err := s.state.Get(keyDate); err == nil && cachedDate == dateKey {
		if text, err := s.state.Get(keyText); err == nil && text != "" {
			index := s.storedIndex()
			return Quote{Citation: text, Index: index, Date: dateKey}, nil
		}
	}

	affirmations, err := s.repo.ListOrdered(ctx)
	if err != nil {
		s.log.Error("failed to load affirmations", "error", err)
		return Quote{}, fmt.Errorf("load affirmations: %w", err)
	}
	if len(affirmations) == 0 {
		return Quote{}, ErrEmpty
	}

	index := s.now().YearDay() % len(affirmations)
	return s.cache(dateKey, index, affirmations[index].Citation)
}

// Next advances the override counter by one, modulo the affirmation
// count, regardless of the date-derived index.
func (s *Service) Next(ctx context.Context) (Quote, error) {
	affirmations, err := s.repo.ListOrdered(ctx)
	if err != nil {
		s.log.Error("failed to load affirmations", "error", err)
		return Quote{}, fmt.Errorf("load affirmations: %w", err)
	}
	if len(affirmations) == 0 {
		return Quote{}, ErrEmpty
	}

	index := (s.storedIndex() + 1) % len(affirmations)
	return s.cache(s.now().Format("2006-01-02"), index, affirmations[index].Citation)
}

func (s *Service) storedIndex() int {
	raw, err := s.state.Get(keyIndex)
	if err != nil {
		return 0
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return index
}

func (s *Service) cache(dateKey string, index int, text string) (Quote, error) {
	if err := s.state.Set(keyDate, dateKey); err != nil {
		return Quote{}, fmt.Errorf("cache punchline date: %w", err)
	}
	if err := s.state.Set(keyText, text); err != nil {
		return Quote{}, fmt.Errorf("cache punchline text: %w", err)
	}
	if err := s.state.Set(keyIndex, strconv.Itoa(index)); err != nil {
		return Quote{}, fmt.Errorf("cache punchline index: %w", err)
	}
	return Quote{Citation: text, Index: index, Date: dateKey}, nil
}
