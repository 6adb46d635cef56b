package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter Filter) (ListResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(ListResponse), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id int) (*Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, req CreateRequest) (*Contact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, req UpdateRequest) (*Contact, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockService) RecentProspects(ctx context.Context, since time.Time, limit int) ([]Contact, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Contact), args.Error(1)
}

func TestHandler_List_PassesFilter(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default())

	svc.On("List", mock.Anything, Filter{Type: TypeClient, Search: "dupont"}).
		Return(ListResponse{Contacts: []Contact{{ID: 1}}, Total: 1}, nil)

	out, err := h.list(context.Background(), &listInput{Type: "client", Search: "dupont"})
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Body.Total)

	svc.AssertExpectations(t)
}

func TestHandler_Find_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default())

	svc.On("Find", mock.Anything, 99).Return(nil, ErrNotFound)

	out, err := h.find(context.Background(), &findInput{ID: 99})
	assert.Nil(t, out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	svc.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default())

	req := CreateRequest{NomComplet: "Jean Dupont"}
	svc.On("Create", mock.Anything, req).
		Return(&Contact{ID: 42, NomComplet: "Jean Dupont"}, nil)

	out, err := h.create(context.Background(), &createInput{Body: req})
	assert.NoError(t, err)
	assert.Equal(t, 42, out.Body.ID)

	svc.AssertExpectations(t)
}
