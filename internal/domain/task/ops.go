package task

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) tacheListOp() huma.Operation {
	return huma.Operation{
		OperationID: "taches-list",
		Method:      http.MethodGet,
		Path:        "/api/taches",
		Summary:     "List taches",
		Tags:        []string{"taches"},
	}
}

func (h *Handler) tacheCreateOp() huma.Operation {
	return huma.Operation{
		OperationID: "taches-create",
		Method:      http.MethodPost,
		Path:        "/api/taches",
		Summary:     "Create a tache",
		Tags:        []string{"taches"},
	}
}

func (h *Handler) tacheFindOp() huma.Operation {
	return huma.Operation{
		OperationID: "taches-find",
		Method:      http.MethodGet,
		Path:        "/api/taches/{id}",
		Summary:     "Get a tache",
		Tags:        []string{"taches"},
	}
}

func (h *Handler) tacheUpdateOp() huma.Operation {
	return huma.Operation{
		OperationID: "taches-update",
		Method:      http.MethodPut,
		Path:        "/api/taches/{id}",
		Summary:     "Update a tache",
		Tags:        []string{"taches"},
	}
}

func (h *Handler) tacheDeleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "taches-delete",
		Method:      http.MethodDelete,
		Path:        "/api/taches/{id}",
		Summary:     "Delete a tache",
		Tags:        []string{"taches"},
	}
}

func (h *Handler) tacheToggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "taches-toggle",
		Method:      http.MethodPost,
		Path:        "/api/taches/{id}/toggle",
		Summary:     "Toggle completion status",
		Tags:        []string{"taches"},
	}
}

func (h *Handler) captureListOp() huma.Operation {
	return huma.Operation{
		OperationID: "captures-list",
		Method:      http.MethodGet,
		Path:        "/api/captures",
		Summary:     "List captures",
		Tags:        []string{"captures"},
	}
}

func (h *Handler) captureCreateOp() huma.Operation {
	return huma.Operation{
		OperationID: "captures-create",
		Method:      http.MethodPost,
		Path:        "/api/captures",
		Summary:     "Create a capture",
		Tags:        []string{"captures"},
	}
}

func (h *Handler) captureFindOp() huma.Operation {
	return huma.Operation{
		OperationID: "captures-find",
		Method:      http.MethodGet,
		Path:        "/api/captures/{id}",
		Summary:     "Get a capture",
		Tags:        []string{"captures"},
	}
}

func (h *Handler) captureUpdateOp() huma.Operation {
	return huma.Operation{
		OperationID: "captures-update",
		Method:      http.MethodPut,
		Path:        "/api/captures/{id}",
		Summary:     "Update a capture",
		Tags:        []string{"captures"},
	}
}

func (h *Handler) captureDeleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "captures-delete",
		Method:      http.MethodDelete,
		Path:        "/api/captures/{id}",
		Summary:     "Delete a capture",
		Tags:        []string{"captures"},
	}
}

func (h *Handler) captureToggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "captures-toggle",
		Method:      http.MethodPost,
		Path:        "/api/captures/{id}/toggle",
		Summary:     "Toggle completion status",
		Tags:        []string{"captures"},
	}
}
