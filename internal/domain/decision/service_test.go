package decision

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

func (m *MockRepository) List(ctx context.Context, filter Filter) ([]Decision, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Decision), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Decision, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Decision), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, d *Decision) (int, error) {
	args := m.Called(ctx, d)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, d *Decision) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Active(ctx context.Context, limit int) ([]Decision, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Decision), args.Error(1)
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, slog.Default())
	s.now = func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func TestService_Create_Defaults(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *Decision) bool {
		return d.TypeConcil == PetitConcil &&
			d.Statut == StatusActive &&
			d.DecisionDate.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	})).Return(5, nil)

	created, err := service.Create(context.Background(), WriteRequest{
		Title:    "Changer d'hebergeur",
		Decision: "Migrer vers un VPS dedie",
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_GrandConcil(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *Decision) bool {
		return d.TypeConcil == GrandConcil && d.Deadline != nil
	})).Return(6, nil)

	_, err := service.Create(context.Background(), WriteRequest{
		Title:      "Refonte de l'offre",
		Decision:   "Lancer une offre annuelle",
		TypeConcil: GrandConcil,
		Deadline:   "2025-04-01",
	})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_MissingFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Create(context.Background(), WriteRequest{Title: "Sans texte"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Get", mock.Anything, 9).Return(&Decision{ID: 9}, nil)
	mockRepo.On("Delete", mock.Anything, 9).Return(nil)

	err := service.Delete(context.Background(), 9)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Active(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	decisions := []Decision{
		{ID: 1, Statut: StatusActive},
		{ID: 2, Statut: StatusImplementee},
	}

	mockRepo.On("Active", mock.Anything, 5).Return(decisions, nil)

	got, err := service.Active(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	mockRepo.AssertExpectations(t)
}
