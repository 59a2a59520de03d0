package news

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "news-list",
		Method:      http.MethodGet,
		Path:        "/news",
		Summary:     "List announcements, newest first",
		Tags:        []string{"news"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "news-create",
		Method:        http.MethodPost,
		Path:          "/news",
		Summary:       "Create an announcement",
		Tags:          []string{"news"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "news-update",
		Method:      http.MethodPut,
		Path:        "/news/{id}",
		Summary:     "Replace an announcement",
		Tags:        []string{"news"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "news-delete",
		Method:      http.MethodDelete,
		Path:        "/news/{id}",
		Summary:     "Delete an announcement",
		Tags:        []string{"news"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
