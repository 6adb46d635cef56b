package affirmation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListOrdered(ctx context.Context) ([]Affirmation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Affirmation), args.Error(1)
}

// memState is an in-memory StateStore.
type memState struct {
	data map[string]string
}

func newMemState() *memState {
	return &memState{data: make(map[string]string)}
}

func (s *memState) Get(key string) (string, error) {
	return s.data[key], nil
}

func (s *memState) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func fiveAffirmations() []Affirmation {
	return []Affirmation{
		{ID: 1, Numero: 1, Citation: "citation un"},
		{ID: 2, Numero: 2, Citation: "citation deux"},
		{ID: 3, Numero: 3, Citation: "citation trois"},
		{ID: 4, Numero: 4, Citation: "citation quatre"},
		{ID: 5, Numero: 5, Citation: "citation cinq"},
	}
}

func newTestService(repo Repository, state StateStore, now time.Time) *Service {
	s := NewService(repo, state, slog.Default())
	s.now = func() time.Time { return now }
	return s
}

func TestService_Today_DayOfYearIndex(t *testing.T) {
	mockRepo := new(MockRepository)
	state := newMemState()
	// 2025-01-07 is day 7 of the year: 7 mod 5 = 2.
	service := newTestService(mockRepo, state, time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC))

	mockRepo.On("ListOrdered", mock.Anything).Return(fiveAffirmations(), nil)

	quote, err := service.Today(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, quote.Index)
	assert.Equal(t, "citation trois", quote.Citation)
	assert.Equal(t, "2025-01-07", quote.Date)

	assert.Equal(t, "2025-01-07", state.data["punchline_date"])
	assert.Equal(t, "citation trois", state.data["punchline_text"])
	assert.Equal(t, "2", state.data["punchline_index"])

	mockRepo.AssertExpectations(t)
}

func TestService_Today_CacheHitSkipsRepo(t *testing.T) {
	mockRepo := new(MockRepository)
	state := newMemState()
	state.data["punchline_date"] = "2025-01-07"
	state.data["punchline_text"] = "citation trois"
	state.data["punchline_index"] = "2"

	service := newTestService(mockRepo, state, time.Date(2025, 1, 7, 18, 0, 0, 0, time.UTC))

	quote, err := service.Today(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "citation trois", quote.Citation)
	assert.Equal(t, 2, quote.Index)

	mockRepo.AssertNotCalled(t, "ListOrdered")
}

func TestService_Today_StaleCacheRecomputes(t *testing.T) {
	mockRepo := new(MockRepository)
	state := newMemState()
	state.data["punchline_date"] = "2025-01-06"
	state.data["punchline_text"] = "citation deux"
	state.data["punchline_index"] = "1"

	service := newTestService(mockRepo, state, time.Date(2025, 1, 7, 8, 0, 0, 0, time.UTC))

	mockRepo.On("ListOrdered", mock.Anything).Return(fiveAffirmations(), nil)

	quote, err := service.Today(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, quote.Index)
	assert.Equal(t, "2025-01-07", state.data["punchline_date"])

	mockRepo.AssertExpectations(t)
}

func TestService_Next_AdvancesStoredIndex(t *testing.T) {
	mockRepo := new(MockRepository)
	state := newMemState()
	state.data["punchline_date"] = "2025-01-07"
	state.data["punchline_text"] = "citation trois"
	state.data["punchline_index"] = "2"

	service := newTestService(mockRepo, state, time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC))

	mockRepo.On("ListOrdered", mock.Anything).Return(fiveAffirmations(), nil)

	quote, err := service.Next(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, quote.Index)
	assert.Equal(t, "citation quatre", quote.Citation)
	assert.Equal(t, "3", state.data["punchline_index"])

	mockRepo.AssertExpectations(t)
}

func TestService_Next_WrapsAround(t *testing.T) {
	mockRepo := new(MockRepository)
	state := newMemState()
	state.data["punchline_index"] = "4"

	service := newTestService(mockRepo, state, time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC))

	mockRepo.On("ListOrdered", mock.Anything).Return(fiveAffirmations(), nil)

	quote, err := service.Next(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, quote.Index)
	assert.Equal(t, "citation un", quote.Citation)

	mockRepo.AssertExpectations(t)
}

func TestService_Today_Empty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, newMemState(), time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC))

	mockRepo.On("ListOrdered", mock.Anything).Return([]Affirmation{}, nil)

	_, err := service.Today(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)

	mockRepo.AssertExpectations(t)
}
