package journal

import (
	"context"
	"errors"
	"net/http"
	"time"

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
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.upsertOp(), h.upsert)
}

type dateInput struct {
	Date string `path:"date" doc:"YYYY-MM-DD"`
}

type entryOutput struct {
	Body Entry
}

type upsertInput struct {
	Date string `path:"date" doc:"YYYY-MM-DD"`
	Body WriteRequest
}

func (h *Handler) get(ctx context.Context, input *dateInput) (*entryOutput, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid date")
	}

	e, err := h.service.Get(ctx, date)
	if err != nil {
		return nil, mapError(err)
	}
	return &entryOutput{Body: *e}, nil
}

func (h *Handler) upsert(ctx context.Context, input *upsertInput) (*entryOutput, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid date")
	}

	e, err := h.service.Upsert(ctx, date, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &entryOutput{Body: *e}, nil
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-get",
		Method:      http.MethodGet,
		Path:        "/api/journal/{date}",
		Summary:     "Get the entry for a day",
		Tags:        []string{"journal"},
	}
}

func (h *Handler) upsertOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-upsert",
		Method:      http.MethodPut,
		Path:        "/api/journal/{date}",
		Summary:     "Create or replace the entry for a day",
		Tags:        []string{"journal"},
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound("journal entry not found")
	case errors.Is(err, ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
