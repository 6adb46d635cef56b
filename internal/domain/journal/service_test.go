package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByDate(ctx context.Context, date time.Time) (*Entry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Entry), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, e *Entry) (int, error) {
	args := m.Called(ctx, e)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e *Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) ScoresSince(ctx context.Context, from time.Time) ([]ScorePoint, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ScorePoint), args.Error(1)
}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestService_Upsert_CreatesWhenMissing(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("GetByDate", mock.Anything, testDate).Return(nil, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *Entry) bool {
		return e.Date.Equal(testDate) && e.OverallScore == 8 && e.ID == 0
	})).Return(11, nil)

	entry, err := service.Upsert(context.Background(), testDate, WriteRequest{OverallScore: 8})
	assert.NoError(t, err)
	assert.Equal(t, 11, entry.ID)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Upsert_UpdatesExisting(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := &Entry{ID: 7, Date: testDate, OverallScore: 5}

	mockRepo.On("GetByDate", mock.Anything, testDate).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *Entry) bool {
		return e.ID == 7 && e.OverallScore == 9
	})).Return(nil)

	entry, err := service.Upsert(context.Background(), testDate, WriteRequest{OverallScore: 9})
	assert.NoError(t, err)
	assert.Equal(t, 7, entry.ID)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Upsert_ZeroesMinutesWithoutMeditation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("GetByDate", mock.Anything, testDate).Return(nil, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *Entry) bool {
		return !e.Meditation && e.MeditationMinutes == 0
	})).Return(1, nil)

	_, err := service.Upsert(context.Background(), testDate, WriteRequest{
		MeditationMinutes: 20,
	})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Upsert_SleepQualityDefault(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("GetByDate", mock.Anything, testDate).Return(nil, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *Entry) bool {
		return e.SleepQuality == "good"
	})).Return(1, nil)

	_, err := service.Upsert(context.Background(), testDate, WriteRequest{})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Upsert_ScoreOutOfRange(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Upsert(context.Background(), testDate, WriteRequest{OverallScore: 11})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	mockRepo.AssertNotCalled(t, "GetByDate")
}

func TestService_Upsert_ExistenceCheckFails(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("GetByDate", mock.Anything, testDate).Return(nil, errors.New("connection refused"))

	_, err := service.Upsert(context.Background(), testDate, WriteRequest{})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "Create")
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("GetByDate", mock.Anything, testDate).Return(nil, ErrNotFound)

	_, err := service.Get(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_ScoresSince(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	points := []ScorePoint{
		{Date: testDate.AddDate(0, 0, -2), OverallScore: 6, EnergyScore: 5, WorkScore: 7},
		{Date: testDate.AddDate(0, 0, -1), OverallScore: 8, EnergyScore: 7, WorkScore: 8},
	}

	mockRepo.On("ScoresSince", mock.Anything, mock.Anything).Return(points, nil)

	got, err := service.ScoresSince(context.Background(), testDate.AddDate(0, 0, -7))
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 6, got[0].OverallScore)

	mockRepo.AssertExpectations(t)
}
