package decision

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "decisions-list",
		Method:      http.MethodGet,
		Path:        "/api/decisions",
		Summary:     "List decisions",
		Tags:        []string{"decisions"},
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "decisions-create",
		Method:      http.MethodPost,
		Path:        "/api/decisions",
		Summary:     "Create a decision",
		Tags:        []string{"decisions"},
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "decisions-find",
		Method:      http.MethodGet,
		Path:        "/api/decisions/{id}",
		Summary:     "Get a decision",
		Tags:        []string{"decisions"},
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "decisions-update",
		Method:      http.MethodPut,
		Path:        "/api/decisions/{id}",
		Summary:     "Update a decision",
		Tags:        []string{"decisions"},
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "decisions-delete",
		Method:      http.MethodDelete,
		Path:        "/api/decisions/{id}",
		Summary:     "Delete a decision",
		Tags:        []string{"decisions"},
	}
}
