package affirmation

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
	huma.Register(api, h.todayOp(), h.today)
	huma.Register(api, h.nextOp(), h.next)
}

type quoteOutput struct {
	Body Quote
}

func (h *Handler) today(ctx context.Context, _ *struct{}) (*quoteOutput, error) {
	q, err := h.service.Today(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &quoteOutput{Body: q}, nil
}

func (h *Handler) next(ctx context.Context, _ *struct{}) (*quoteOutput, error) {
	q, err := h.service.Next(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &quoteOutput{Body: q}, nil
}

func (h *Handler) todayOp() huma.Operation {
	return huma.Operation{
		OperationID: "punchline-today",
		Method:      http.MethodGet,
		Path:        "/api/punchline",
		Summary:     "Quote of the day",
		Tags:        []string{"punchline"},
	}
}

func (h *Handler) nextOp() huma.Operation {
	return huma.Operation{
		OperationID: "punchline-next",
		Method:      http.MethodPost,
		Path:        "/api/punchline/next",
		Summary:     "Advance to the next quote",
		Tags:        []string{"punchline"},
	}
}

func mapError(err error) error {
	if errors.Is(err, ErrEmpty) {
		return huma.Error404NotFound("no affirmations available")
	}
	return huma.Error500InternalServerError(err.Error())
}
