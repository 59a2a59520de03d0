package old

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "old-create",
		Method:        http.MethodPost,
		Path:          "/old/create",
		Summary:       "Create a legacy sync record",
		Tags:          []string{"old"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "old-list",
		Method:      http.MethodGet,
		Path:        "/old/getList",
		Summary:     "List legacy sync records",
		Tags:        []string{"old"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "old-get",
		Method:      http.MethodGet,
		Path:        "/old/{id}",
		Summary:     "Get one legacy sync record",
		Tags:        []string{"old"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "old-update",
		Method:      http.MethodPatch,
		Path:        "/old/{id}",
		Summary:     "Partially update a legacy sync record",
		Tags:        []string{"old"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "old-delete",
		Method:        http.MethodDelete,
		Path:          "/old/{id}",
		Summary:       "Delete a legacy sync record",
		Tags:          []string{"old"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
