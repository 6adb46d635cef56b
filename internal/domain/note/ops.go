package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-list",
		Method:      http.MethodGet,
		Path:        "/api/notes",
		Summary:     "List notes",
		Tags:        []string{"notes"},
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-create",
		Method:      http.MethodPost,
		Path:        "/api/notes",
		Summary:     "Create a note",
		Tags:        []string{"notes"},
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-find",
		Method:      http.MethodGet,
		Path:        "/api/notes/{id}",
		Summary:     "Get a note",
		Tags:        []string{"notes"},
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-update",
		Method:      http.MethodPut,
		Path:        "/api/notes/{id}",
		Summary:     "Update a note",
		Tags:        []string{"notes"},
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/notes/{id}",
		Summary:     "Delete a note",
		Tags:        []string{"notes"},
	}
}

func (h *Handler) favoriteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-toggle-favorite",
		Method:      http.MethodPost,
		Path:        "/api/notes/{id}/favorite",
		Summary:     "Toggle the favorite flag",
		Tags:        []string{"notes"},
	}
}
