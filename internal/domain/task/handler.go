package task

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Handler serves both task variants: /api/taches and /api/captures.
type Handler struct {
	taches   *TacheService
	captures *CaptureService
	log      *slog.Logger
}

func NewHandler(taches *TacheService, captures *CaptureService, log *slog.Logger) *Handler {
	return &Handler{taches: taches, captures: captures, log: log}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.tacheListOp(), h.tacheList)
	huma.Register(api, h.tacheCreateOp(), h.tacheCreate)
	huma.Register(api, h.tacheFindOp(), h.tacheFind)
	huma.Register(api, h.tacheUpdateOp(), h.tacheUpdate)
	huma.Register(api, h.tacheDeleteOp(), h.tacheDelete)
	huma.Register(api, h.tacheToggleOp(), h.tacheToggle)

	huma.Register(api, h.captureListOp(), h.captureList)
	huma.Register(api, h.captureCreateOp(), h.captureCreate)
	huma.Register(api, h.captureFindOp(), h.captureFind)
	huma.Register(api, h.captureUpdateOp(), h.captureUpdate)
	huma.Register(api, h.captureDeleteOp(), h.captureDelete)
	huma.Register(api, h.captureToggleOp(), h.captureToggle)
}

type tacheListInput struct {
	Statut   string `query:"statut" doc:"Filter by status"`
	Priorite string `query:"priorite" doc:"Filter by priority"`
}

type tacheListOutput struct {
	Body TacheListResponse
}

type captureListInput struct {
	Statut string `query:"statut" doc:"Filter by status"`
}

type captureListOutput struct {
	Body CaptureListResponse
}

type idInput struct {
	ID int `path:"id"`
}

type tacheOutput struct {
	Body Tache
}

type captureOutput struct {
	Body Capture
}

type tacheCreateInput struct {
	Body TacheRequest
}

type tacheUpdateInput struct {
	ID   int `path:"id"`
	Body TacheRequest
}

type captureCreateInput struct {
	Body CaptureRequest
}

type captureUpdateInput struct {
	ID   int `path:"id"`
	Body CaptureRequest
}

type deleteOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func (h *Handler) tacheList(ctx context.Context, input *tacheListInput) (*tacheListOutput, error) {
	resp, err := h.taches.List(ctx, TacheFilter{
		Statut:   TacheStatus(input.Statut),
		Priorite: TachePriority(input.Priorite),
	})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &tacheListOutput{Body: resp}, nil
}

func (h *Handler) tacheFind(ctx context.Context, input *idInput) (*tacheOutput, error) {
	t, err := h.taches.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &tacheOutput{Body: *t}, nil
}

func (h *Handler) tacheCreate(ctx context.Context, input *tacheCreateInput) (*tacheOutput, error) {
	t, err := h.taches.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &tacheOutput{Body: *t}, nil
}

func (h *Handler) tacheUpdate(ctx context.Context, input *tacheUpdateInput) (*tacheOutput, error) {
	t, err := h.taches.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &tacheOutput{Body: *t}, nil
}

func (h *Handler) tacheDelete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	if err := h.taches.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}
	out := &deleteOutput{}
	out.Body.Status = "deleted"
	return out, nil
}

func (h *Handler) tacheToggle(ctx context.Context, input *idInput) (*tacheOutput, error) {
	t, err := h.taches.ToggleStatus(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &tacheOutput{Body: *t}, nil
}

func (h *Handler) captureList(ctx context.Context, input *captureListInput) (*captureListOutput, error) {
	resp, err := h.captures.List(ctx, CaptureFilter{Statut: CaptureStatus(input.Statut)})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &captureListOutput{Body: resp}, nil
}

func (h *Handler) captureFind(ctx context.Context, input *idInput) (*captureOutput, error) {
	c, err := h.captures.Find(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &captureOutput{Body: *c}, nil
}

func (h *Handler) captureCreate(ctx context.Context, input *captureCreateInput) (*captureOutput, error) {
	c, err := h.captures.Create(ctx, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &captureOutput{Body: *c}, nil
}

func (h *Handler) captureUpdate(ctx context.Context, input *captureUpdateInput) (*captureOutput, error) {
	c, err := h.captures.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &captureOutput{Body: *c}, nil
}

func (h *Handler) captureDelete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	if err := h.captures.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}
	out := &deleteOutput{}
	out.Body.Status = "deleted"
	return out, nil
}

func (h *Handler) captureToggle(ctx context.Context, input *idInput) (*captureOutput, error) {
	c, err := h.captures.ToggleStatus(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &captureOutput{Body: *c}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound("task not found")
	case errors.Is(err, ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
