package contact

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

func (m *MockRepository) List(ctx context.Context, filter Filter) ([]Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Contact), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *Contact) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c *Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) RecentProspects(ctx context.Context, since time.Time, limit int) ([]Contact, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Contact), args.Error(1)
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

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Contact) bool {
		return c.NomComplet == "Jean Dupont" &&
			c.TypeContact == TypeProspect &&
			c.ScorePriorite == 5 &&
			c.StatutRelation == RelationActif &&
			c.DatePremierContact.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)) &&
			c.Email == nil
	})).Return(42, nil)

	created, err := service.Create(context.Background(), CreateRequest{NomComplet: "Jean Dupont"})
	assert.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, TypeProspect, created.TypeContact)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_ExplicitValues(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	score := 9
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Contact) bool {
		return c.TypeContact == TypeClient &&
			c.ScorePriorite == 9 &&
			c.StatutRelation == RelationEnDiscussion &&
			c.Email != nil && *c.Email == "jean@example.com"
	})).Return(7, nil)

	created, err := service.Create(context.Background(), CreateRequest{
		NomComplet:     "Jean Dupont",
		Email:          "jean@example.com",
		TypeContact:    TypeClient,
		ScorePriorite:  &score,
		StatutRelation: "en_discussion",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_MissingName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Create(context.Background(), CreateRequest{Email: "jean@example.com"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_InvalidEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Create(context.Background(), CreateRequest{
		NomComplet: "Jean Dupont",
		Email:      "not-an-email",
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Find_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)

	_, err := service.Find(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	existing := &Contact{
		ID:             3,
		NomComplet:     "Jean Dupont",
		TypeContact:    TypeProspect,
		ScorePriorite:  5,
		StatutRelation: RelationActif,
	}

	mockRepo.On("Get", mock.Anything, 3).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Contact) bool {
		return c.ID == 3 && c.TypeContact == TypeClient && c.ScorePriorite == 5
	})).Return(nil)

	updated, err := service.Update(context.Background(), 3, UpdateRequest{
		NomComplet:  "Jean Dupont",
		TypeContact: TypeClient,
	})
	assert.NoError(t, err)
	assert.Equal(t, TypeClient, updated.TypeContact)

	mockRepo.AssertExpectations(t)
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	contacts := []Contact{
		{ID: 1, NomComplet: "Jean Dupont", ScorePriorite: 8},
		{ID: 2, NomComplet: "Marie Curie", ScorePriorite: 6},
	}

	mockRepo.On("List", mock.Anything, Filter{Type: TypeProspect}).Return(contacts, nil)

	response, err := service.List(context.Background(), Filter{Type: TypeProspect})
	assert.NoError(t, err)
	assert.Equal(t, 2, response.Total)
	assert.Len(t, response.Contacts, 2)

	mockRepo.AssertExpectations(t)
}

func TestService_RecentProspects_RepoError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("RecentProspects", mock.Anything, mock.Anything, 3).
		Return(nil, errors.New("connection refused"))

	_, err := service.RecentProspects(context.Background(), time.Now(), 3)
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}
