package contact

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
	Type   string `query:"type" doc:"Filter by contact type"`
	Statut string `query:"statut" doc:"Filter by relation status"`
	Search string `query:"q" doc:"Substring match on name and company"`
}

type listOutput struct {
	Body ListResponse
}

type findInput struct {
	ID int `path:"id"`
}

type contactOutput struct {
	Body Contact
}

type createInput struct {
	Body CreateRequest
}

type updateInput struct {
	ID   int `path:"id"`
	Body UpdateRequest
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	resp, err := h.service.List(ctx, Filter{
		Type:           Type(input.Type),
		StatutRelation: RelationStatus(input.Statut),
		Search:         input.Search,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &listOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*contactOutput, error) {
	c, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &contactOutput{Body: *c}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*contactOutput, error) {
	c, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &contactOutput{Body: *c}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*contactOutput, error) {
	c, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &contactOutput{Body: *c}, nil
}

// mapError translates domain errors into HTTP ones; anything unknown is
// surfaced verbatim as a 500.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound("contact not found")
	case errors.Is(err, ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
