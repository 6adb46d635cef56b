package dashboard

import (
	"context"
	"errors"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"commandcenter/internal/domain/affirmation"
	"commandcenter/internal/domain/contact"
	"commandcenter/internal/domain/conversation"
	"commandcenter/internal/domain/decision"
	"commandcenter/internal/domain/finance"
	"commandcenter/internal/domain/journal"
	"commandcenter/internal/domain/note"
	"commandcenter/internal/domain/task"
)

const (
	tacheLimit    = 5
	noteLimit     = 5
	decisionLimit = 5
	prospectLimit = 3

	urgentWithinDays = 3
	prospectWindow   = 7 * 24 * time.Hour
	chartWindow      = 7 * 24 * time.Hour
)

// The aggregator consumes narrow slices of each domain service.
type (
	TreasuryLoader interface {
		MonthlyTreasury(ctx context.Context) (finance.Treasury, error)
	}
	CaptureLoader interface {
		Active(ctx context.Context, limit int) ([]task.Capture, error)
	}
	TacheLoader interface {
		Urgent(ctx context.Context, withinDays, limit int) ([]task.Tache, error)
	}
	NoteLoader interface {
		Recent(ctx context.Context, limit int) ([]note.Note, error)
	}
	DecisionLoader interface {
		Active(ctx context.Context, limit int) ([]decision.Decision, error)
	}
	MeetingLoader interface {
		MeetingsBetween(ctx context.Context, from, to time.Time) ([]conversation.Conversation, error)
	}
	ProspectLoader interface {
		RecentProspects(ctx context.Context, since time.Time, limit int) ([]contact.Contact, error)
	}
	JournalLoader interface {
		Get(ctx context.Context, date time.Time) (*journal.Entry, error)
		ScoresSince(ctx context.Context, from time.Time) ([]journal.ScorePoint, error)
	}
	QuoteLoader interface {
		Today(ctx context.Context) (affirmation.Quote, error)
	}
)

type Service struct {
	treasury  TreasuryLoader
	captures  CaptureLoader
	taches    TacheLoader
	notes     NoteLoader
	decisions DecisionLoader
	meetings  MeetingLoader
	prospects ProspectLoader
	journal   JournalLoader
	quotes    QuoteLoader

	log *slog.Logger
	now func() time.Time
}

func NewService(
	treasury TreasuryLoader,
	captures CaptureLoader,
	taches TacheLoader,
	notes NoteLoader,
	decisions DecisionLoader,
	meetings MeetingLoader,
	prospects ProspectLoader,
	journalLoader JournalLoader,
	quotes QuoteLoader,
	log *slog.Logger,
) *Service {
	return &Service{
		treasury:  treasury,
		captures:  captures,
		taches:    taches,
		notes:     notes,
		decisions: decisions,
		meetings:  meetings,
		prospects: prospects,
		journal:   journalLoader,
		quotes:    quotes,
		log:       log.With("component", "dashboard_service"),
		now:       time.Now,
	}
}

// Load fans out all dashboard reads concurrently and waits for every one
// of them. Each read logs its own failure and leaves its section empty;
// the reads share no state and no read can fail the overview.
func (s *Service) Load(ctx context.Context) (*Overview, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	overview := &Overview{GeneratedAt: now}

	var g errgroup.Group

	g.Go(func() error {
		t, err := s.treasury.MonthlyTreasury(ctx)
		if err != nil {
			s.log.Error("dashboard: treasury read failed", "error", err)
			return nil
		}
		overview.Tresorerie = &t
		return nil
	})

	g.Go(func() error {
		captures, err := s.captures.Active(ctx, tacheLimit)
		if err != nil {
			s.log.Error("dashboard: captures read failed", "error", err)
			return nil
		}
		overview.Taches = captures
		return nil
	})

	g.Go(func() error {
		taches, err := s.taches.Urgent(ctx, urgentWithinDays, tacheLimit)
		if err != nil {
			s.log.Error("dashboard: urgent taches read failed", "error", err)
			return nil
		}
		overview.Urgentes = taches
		return nil
	})

	g.Go(func() error {
		notes, err := s.notes.Recent(ctx, noteLimit)
		if err != nil {
			s.log.Error("dashboard: notes read failed", "error", err)
			return nil
		}
		overview.Notes = notes
		return nil
	})

	g.Go(func() error {
		decisions, err := s.decisions.Active(ctx, decisionLimit)
		if err != nil {
			s.log.Error("dashboard: decisions read failed", "error", err)
			return nil
		}
		overview.Decisions = decisions
		return nil
	})

	g.Go(func() error {
		rdvs, err := s.meetings.MeetingsBetween(ctx, today, today.AddDate(0, 0, 1))
		if err != nil {
			s.log.Error("dashboard: meetings read failed", "error", err)
			return nil
		}
		overview.RDVs = rdvs
		return nil
	})

	g.Go(func() error {
		prospects, err := s.prospects.RecentProspects(ctx, now.Add(-prospectWindow), prospectLimit)
		if err != nil {
			s.log.Error("dashboard: prospects read failed", "error", err)
			return nil
		}
		overview.Prospects = prospects
		return nil
	})

	g.Go(func() error {
		entry, err := s.journal.Get(ctx, today)
		if err != nil {
			if !errors.Is(err, journal.ErrNotFound) {
				s.log.Error("dashboard: journal read failed", "error", err)
			}
			return nil
		}
		overview.Journal = entry
		return nil
	})

	g.Go(func() error {
		points, err := s.journal.ScoresSince(ctx, now.Add(-chartWindow))
		if err != nil {
			s.log.Error("dashboard: focus chart read failed", "error", err)
			return nil
		}
		overview.FocusChart = points
		return nil
	})

	g.Go(func() error {
		quote, err := s.quotes.Today(ctx)
		if err != nil {
			if !errors.Is(err, affirmation.ErrEmpty) {
				s.log.Error("dashboard: punchline read failed", "error", err)
			}
			return nil
		}
		overview.Punchline = &quote
		return nil
	})

	_ = g.Wait() // every goroutine swallows its own error

	return overview, nil
}
