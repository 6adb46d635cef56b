package project

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service Servicer
	log     *slog.Logger
}

func NewHandler(service Servicer, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
}

type listInput struct {
	Type   string `query:"type" doc:"Filter by project type"`
	Statut string `query:"statut" doc:"Filter by status"`
}

type listOutput struct {
	Body ListResponse
}

type findInput struct {
	ID int `path:"id"`
}

type projectOutput struct {
	Body Project
}

type createInput struct {
	Body WriteRequest
}

type updateInput struct {
	ID   int `path:"id"`
	Body WriteRequest
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	resp, err := h.service.List(ctx, Filter{
		TypeProjet: Type(input.Type),
		Statut:     Status(input.Statut),
	})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &listOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*projectOutput, error) {
	p, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &projectOutput{Body: *p}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*projectOutput, error) {
	p, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &projectOutput{Body: *p}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*projectOutput, error) {
	p, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &projectOutput{Body: *p}, nil
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-list",
		Method:      http.MethodGet,
		Path:        "/api/projects",
		Summary:     "List projects",
		Tags:        []string{"projects"},
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-create",
		Method:      http.MethodPost,
		Path:        "/api/projects",
		Summary:     "Create a project",
		Tags:        []string{"projects"},
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-find",
		Method:      http.MethodGet,
		Path:        "/api/projects/{id}",
		Summary:     "Get a project",
		Tags:        []string{"projects"},
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-update",
		Method:      http.MethodPut,
		Path:        "/api/projects/{id}",
		Summary:     "Update a project",
		Tags:        []string{"projects"},
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound("project not found")
	case errors.Is(err, ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
