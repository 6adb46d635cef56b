package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockTacheRepository struct {
	mock.Mock
}

func (m *MockTacheRepository) List(ctx context.Context, filter TacheFilter) ([]Tache, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tache), args.Error(1)
}

func (m *MockTacheRepository) Get(ctx context.Context, id int) (*Tache, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tache), args.Error(1)
}

func (m *MockTacheRepository) Create(ctx context.Context, t *Tache) (int, error) {
	args := m.Called(ctx, t)
	return args.Int(0), args.Error(1)
}

func (m *MockTacheRepository) Update(ctx context.Context, t *Tache) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTacheRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTacheRepository) SetStatut(ctx context.Context, id int, statut TacheStatus) error {
	args := m.Called(ctx, id, statut)
	return args.Error(0)
}

func (m *MockTacheRepository) Urgent(ctx context.Context, deadlineBefore time.Time, limit int) ([]Tache, error) {
	args := m.Called(ctx, deadlineBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tache), args.Error(1)
}

type MockCaptureRepository struct {
	mock.Mock
}

func (m *MockCaptureRepository) List(ctx context.Context, filter CaptureFilter) ([]Capture, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Capture), args.Error(1)
}

func (m *MockCaptureRepository) Get(ctx context.Context, id int) (*Capture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Capture), args.Error(1)
}

func (m *MockCaptureRepository) Create(ctx context.Context, c *Capture) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *MockCaptureRepository) Update(ctx context.Context, c *Capture) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaptureRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCaptureRepository) SetStatut(ctx context.Context, id int, statut CaptureStatus) error {
	args := m.Called(ctx, id, statut)
	return args.Error(0)
}

func (m *MockCaptureRepository) Active(ctx context.Context, limit int) ([]Capture, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Capture), args.Error(1)
}

func TestTacheService_Create_Defaults(t *testing.T) {
	mockRepo := new(MockTacheRepository)
	service := NewTacheService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(ta *Tache) bool {
		return ta.Name == "Appeler le comptable" &&
			ta.Priorite == PrioriteStandard &&
			ta.Statut == TacheNonDebutee
	})).Return(10, nil)

	created, err := service.Create(context.Background(), TacheRequest{Name: "Appeler le comptable"})
	assert.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	mockRepo.AssertExpectations(t)
}

func TestTacheService_Toggle_InProgressBecomesDone(t *testing.T) {
	mockRepo := new(MockTacheRepository)
	service := NewTacheService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 1).
		Return(&Tache{ID: 1, Statut: TacheEnCours}, nil).Once()
	mockRepo.On("SetStatut", mock.Anything, 1, TacheTerminee).Return(nil)
	mockRepo.On("Get", mock.Anything, 1).
		Return(&Tache{ID: 1, Statut: TacheTerminee}, nil).Once()

	toggled, err := service.ToggleStatus(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, TacheTerminee, toggled.Statut)

	mockRepo.AssertExpectations(t)
}

func TestTacheService_Toggle_DoneBecomesNotStarted(t *testing.T) {
	mockRepo := new(MockTacheRepository)
	service := NewTacheService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 1).
		Return(&Tache{ID: 1, Statut: TacheTerminee}, nil).Once()
	mockRepo.On("SetStatut", mock.Anything, 1, TacheNonDebutee).Return(nil)
	mockRepo.On("Get", mock.Anything, 1).
		Return(&Tache{ID: 1, Statut: TacheNonDebutee}, nil).Once()

	toggled, err := service.ToggleStatus(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, TacheNonDebutee, toggled.Statut)

	mockRepo.AssertExpectations(t)
}

func TestTacheService_Toggle_NotFound(t *testing.T) {
	mockRepo := new(MockTacheRepository)
	service := NewTacheService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)

	_, err := service.ToggleStatus(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertNotCalled(t, "SetStatut")
}

func TestCaptureService_Toggle_TodoBecomesDone(t *testing.T) {
	mockRepo := new(MockCaptureRepository)
	service := NewCaptureService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 2).
		Return(&Capture{ID: 2, Statut: CaptureTodo}, nil).Once()
	mockRepo.On("SetStatut", mock.Anything, 2, CaptureDone).Return(nil)
	mockRepo.On("Get", mock.Anything, 2).
		Return(&Capture{ID: 2, Statut: CaptureDone}, nil).Once()

	toggled, err := service.ToggleStatus(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, CaptureDone, toggled.Statut)

	mockRepo.AssertExpectations(t)
}

func TestCaptureService_Toggle_DoneBecomesTodo(t *testing.T) {
	mockRepo := new(MockCaptureRepository)
	service := NewCaptureService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 2).
		Return(&Capture{ID: 2, Statut: CaptureDone}, nil).Once()
	mockRepo.On("SetStatut", mock.Anything, 2, CaptureTodo).Return(nil)
	mockRepo.On("Get", mock.Anything, 2).
		Return(&Capture{ID: 2, Statut: CaptureTodo}, nil).Once()

	toggled, err := service.ToggleStatus(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, CaptureTodo, toggled.Statut)

	mockRepo.AssertExpectations(t)
}

func TestCaptureService_Create_DefaultStatut(t *testing.T) {
	mockRepo := new(MockCaptureRepository)
	service := NewCaptureService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Capture) bool {
		return c.Statut == CaptureTodo
	})).Return(4, nil)

	created, err := service.Create(context.Background(), CaptureRequest{Name: "Relire le contrat"})
	assert.NoError(t, err)
	assert.Equal(t, CaptureTodo, created.Statut)

	mockRepo.AssertExpectations(t)
}

func TestCaptureService_Active(t *testing.T) {
	mockRepo := new(MockCaptureRepository)
	service := NewCaptureService(mockRepo, slog.Default())

	captures := []Capture{
		{ID: 1, Name: "A", Statut: CaptureTodo, Priorite: 3},
		{ID: 2, Name: "B", Statut: CaptureEnCours, Priorite: 1},
	}

	mockRepo.On("Active", mock.Anything, 5).Return(captures, nil)

	got, err := service.Active(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	mockRepo.AssertExpectations(t)
}
