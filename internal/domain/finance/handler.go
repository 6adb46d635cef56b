package finance

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
}

type listInput struct {
	Statut string `query:"statut" doc:"Filter by status"`
}

type listOutput struct {
	Body ListResponse
}

type findInput struct {
	ID int `path:"id"`
}

type transactionOutput struct {
	Body Transaction
}

type createInput struct {
	Body WriteRequest
}

type updateInput struct {
	ID   int `path:"id"`
	Body WriteRequest
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	resp, err := h.service.List(ctx, Filter{Statut: Status(input.Statut)})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &listOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*transactionOutput, error) {
	t, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &transactionOutput{Body: *t}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*transactionOutput, error) {
	t, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &transactionOutput{Body: *t}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*transactionOutput, error) {
	t, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &transactionOutput{Body: *t}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound("transaction not found")
	case errors.Is(err, ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
