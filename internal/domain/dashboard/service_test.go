package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/affirmation"
	"commandcenter/internal/domain/contact"
	"commandcenter/internal/domain/conversation"
	"commandcenter/internal/domain/decision"
	"commandcenter/internal/domain/finance"
	"commandcenter/internal/domain/journal"
	"commandcenter/internal/domain/note"
	"commandcenter/internal/domain/task"
)

// Stub loaders keep the fan-out test readable; each either returns its
// payload or a fixed error.

type stubTreasury struct {
	treasury finance.Treasury
	err      error
}

func (s stubTreasury) MonthlyTreasury(context.Context) (finance.Treasury, error) {
	return s.treasury, s.err
}

type stubCaptures struct {
	captures []task.Capture
	err      error
}

func (s stubCaptures) Active(context.Context, int) ([]task.Capture, error) {
	return s.captures, s.err
}

type stubTaches struct {
	taches []task.Tache
	err    error
}

func (s stubTaches) Urgent(context.Context, int, int) ([]task.Tache, error) {
	return s.taches, s.err
}

type stubNotes struct {
	notes []note.Note
	err   error
}

func (s stubNotes) Recent(context.Context, int) ([]note.Note, error) {
	return s.notes, s.err
}

type stubDecisions struct {
	decisions []decision.Decision
	err       error
}

func (s stubDecisions) Active(context.Context, int) ([]decision.Decision, error) {
	return s.decisions, s.err
}

type stubMeetings struct {
	meetings []conversation.Conversation
	err      error
}

func (s stubMeetings) MeetingsBetween(context.Context, time.Time, time.Time) ([]conversation.Conversation, error) {
	return s.meetings, s.err
}

type stubProspects struct {
	prospects []contact.Contact
	err       error
}

func (s stubProspects) RecentProspects(context.Context, time.Time, int) ([]contact.Contact, error) {
	return s.prospects, s.err
}

type stubJournal struct {
	entry  *journal.Entry
	points []journal.ScorePoint
	err    error
}

func (s stubJournal) Get(context.Context, time.Time) (*journal.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

func (s stubJournal) ScoresSince(context.Context, time.Time) ([]journal.ScorePoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.points, nil
}

type stubQuotes struct {
	quote affirmation.Quote
	err   error
}

func (s stubQuotes) Today(context.Context) (affirmation.Quote, error) {
	return s.quote, s.err
}

func newTestService(
	treasury TreasuryLoader,
	captures CaptureLoader,
	taches TacheLoader,
	notes NoteLoader,
	decisions DecisionLoader,
	meetings MeetingLoader,
	prospects ProspectLoader,
	journalLoader JournalLoader,
	quotes QuoteLoader,
) *Service {
	s := NewService(treasury, captures, taches, notes, decisions, meetings,
		prospects, journalLoader, quotes, slog.Default())
	s.now = func() time.Time {
		return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	}
	return s
}

func fullService() *Service {
	return newTestService(
		stubTreasury{treasury: finance.Treasury{Revenus: 2500, Depenses: 300, Net: 2200}},
		stubCaptures{captures: []task.Capture{{ID: 1, Name: "inbox"}}},
		stubTaches{taches: []task.Tache{{ID: 2, Name: "urgent"}}},
		stubNotes{notes: []note.Note{{ID: 3, Content: "note"}}},
		stubDecisions{decisions: []decision.Decision{{ID: 4, Title: "decision"}}},
		stubMeetings{meetings: []conversation.Conversation{{ID: 5, ContactName: "Jean Dupont"}}},
		stubProspects{prospects: []contact.Contact{{ID: 6, NomComplet: "Marie Curie"}}},
		stubJournal{
			entry:  &journal.Entry{ID: 7, OverallScore: 8},
			points: []journal.ScorePoint{{OverallScore: 8}},
		},
		stubQuotes{quote: affirmation.Quote{Citation: "citation", Index: 2}},
	)
}

func TestService_Load_AllSections(t *testing.T) {
	service := fullService()

	overview, err := service.Load(context.Background())
	assert.NoError(t, err)

	assert.NotNil(t, overview.Tresorerie)
	assert.Equal(t, 2200.0, overview.Tresorerie.Net)
	assert.Len(t, overview.Taches, 1)
	assert.Len(t, overview.Urgentes, 1)
	assert.Len(t, overview.Notes, 1)
	assert.Len(t, overview.Decisions, 1)
	assert.Len(t, overview.RDVs, 1)
	assert.Len(t, overview.Prospects, 1)
	assert.NotNil(t, overview.Journal)
	assert.Len(t, overview.FocusChart, 1)
	assert.NotNil(t, overview.Punchline)
	assert.Equal(t, "citation", overview.Punchline.Citation)
}

func TestService_Load_MeetingsFailureLeavesSectionEmpty(t *testing.T) {
	service := newTestService(
		stubTreasury{treasury: finance.Treasury{Revenus: 100, Net: 100}},
		stubCaptures{captures: []task.Capture{{ID: 1}}},
		stubTaches{},
		stubNotes{notes: []note.Note{{ID: 3, Content: "note"}}},
		stubDecisions{},
		stubMeetings{err: errors.New("connection refused")},
		stubProspects{},
		stubJournal{},
		stubQuotes{err: affirmation.ErrEmpty},
	)

	overview, err := service.Load(context.Background())
	assert.NoError(t, err)

	assert.Empty(t, overview.RDVs)
	assert.NotNil(t, overview.Tresorerie)
	assert.Len(t, overview.Taches, 1)
	assert.Len(t, overview.Notes, 1)
	assert.Nil(t, overview.Punchline)
}

func TestService_Load_EveryReadFails(t *testing.T) {
	boom := errors.New("boom")
	service := newTestService(
		stubTreasury{err: boom},
		stubCaptures{err: boom},
		stubTaches{err: boom},
		stubNotes{err: boom},
		stubDecisions{err: boom},
		stubMeetings{err: boom},
		stubProspects{err: boom},
		stubJournal{err: boom},
		stubQuotes{err: boom},
	)

	overview, err := service.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, overview.Tresorerie)
	assert.Nil(t, overview.Journal)
	assert.Nil(t, overview.Punchline)
	assert.Empty(t, overview.Taches)
	assert.False(t, overview.GeneratedAt.IsZero())
}

func TestService_Load_MissingJournalIsNotAnError(t *testing.T) {
	service := newTestService(
		stubTreasury{},
		stubCaptures{},
		stubTaches{},
		stubNotes{},
		stubDecisions{},
		stubMeetings{},
		stubProspects{},
		stubJournal{err: journal.ErrNotFound},
		stubQuotes{},
	)

	overview, err := service.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, overview.Journal)
}
