package batch

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "batch-create",
		Method:        http.MethodPost,
		Path:          "/batch/create",
		Summary:       "Create a sync batch configuration",
		Tags:          []string{"batch"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "batch-list",
		Method:      http.MethodGet,
		Path:        "/batch/getList",
		Summary:     "List batch configurations",
		Tags:        []string{"batch"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "batch-get",
		Method:      http.MethodGet,
		Path:        "/batch/{id}",
		Summary:     "Get one batch configuration",
		Tags:        []string{"batch"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "batch-update",
		Method:      http.MethodPatch,
		Path:        "/batch/{id}",
		Summary:     "Partially update a batch configuration",
		Tags:        []string{"batch"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "batch-delete",
		Method:        http.MethodDelete,
		Path:          "/batch/{id}",
		Summary:       "Delete a batch configuration",
		Tags:          []string{"batch"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
