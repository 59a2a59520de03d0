package faq

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "faq-list",
		Method:      http.MethodGet,
		Path:        "/faq",
		Summary:     "List FAQ entries in display order",
		Tags:        []string{"faq"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "faq-create",
		Method:        http.MethodPost,
		Path:          "/faq",
		Summary:       "Create an FAQ entry",
		Tags:          []string{"faq"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "faq-update",
		Method:      http.MethodPut,
		Path:        "/faq/{id}",
		Summary:     "Replace an FAQ entry",
		Tags:        []string{"faq"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "faq-delete",
		Method:      http.MethodDelete,
		Path:        "/faq/{id}",
		Summary:     "Delete an FAQ entry",
		Tags:        []string{"faq"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
