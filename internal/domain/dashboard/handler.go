package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.overviewOp(), h.overview)
}

type overviewOutput struct {
	Body Overview
}

func (h *Handler) overview(ctx context.Context, _ *struct{}) (*overviewOutput, error) {
	overview, err := h.service.Load(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &overviewOutput{Body: *overview}, nil
}

func (h *Handler) overviewOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-overview",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Aggregated dashboard overview",
		Tags:        []string{"dashboard"},
	}
}
