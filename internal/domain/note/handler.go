package note

import (
	"context"
	"errors"

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
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.favoriteOp(), h.toggleFavoris)
}

type listInput struct {
	Search string `query:"q" doc:"Substring match on title and content"`
}

type listOutput struct {
	Body ListResponse
}

type findInput struct {
	ID int `path:"id"`
}

type noteOutput struct {
	Body Note
}

type createInput struct {
	Body WriteRequest
}

type updateInput struct {
	ID   int `path:"id"`
	Body WriteRequest
}

type deleteOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	resp, err := h.service.List(ctx, Filter{Search: input.Search})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &listOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*noteOutput, error) {
	n, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &noteOutput{Body: *n}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*noteOutput, error) {
	n, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &noteOutput{Body: *n}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*noteOutput, error) {
	n, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &noteOutput{Body: *n}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}
	out := &deleteOutput{}
	out.Body.Status = "deleted"
	return out, nil
}

func (h *Handler) toggleFavoris(ctx context.Context, input *findInput) (*noteOutput, error) {
	n, err := h.service.ToggleFavoris(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &noteOutput{Body: *n}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound("note not found")
	case errors.Is(err, ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
