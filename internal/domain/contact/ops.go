package contact

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-list",
		Method:      http.MethodGet,
		Path:        "/api/contacts",
		Summary:     "List contacts",
		Tags:        []string{"contacts"},
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-create",
		Method:      http.MethodPost,
		Path:        "/api/contacts",
		Summary:     "Create a contact",
		Tags:        []string{"contacts"},
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-find",
		Method:      http.MethodGet,
		Path:        "/api/contacts/{id}",
		Summary:     "Get a contact",
		Tags:        []string{"contacts"},
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-update",
		Method:      http.MethodPut,
		Path:        "/api/contacts/{id}",
		Summary:     "Update a contact",
		Tags:        []string{"contacts"},
	}
}
