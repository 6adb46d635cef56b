package finance

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "finances-list",
		Method:      http.MethodGet,
		Path:        "/api/finances",
		Summary:     "List transactions",
		Tags:        []string{"finances"},
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "finances-create",
		Method:      http.MethodPost,
		Path:        "/api/finances",
		Summary:     "Record a transaction",
		Tags:        []string{"finances"},
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "finances-find",
		Method:      http.MethodGet,
		Path:        "/api/finances/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"finances"},
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "finances-update",
		Method:      http.MethodPut,
		Path:        "/api/finances/{id}",
		Summary:     "Update a transaction",
		Tags:        []string{"finances"},
	}
}
