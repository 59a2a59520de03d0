package price

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "price-list",
		Method:      http.MethodGet,
		Path:        "/prices",
		Summary:     "List repair prices, optionally filtered by catalog ids",
		Tags:        []string{"price"},
		Middlewares: h.public,
	}
}

func (h *Handler) priceListOp() huma.Operation {
	return huma.Operation{
		OperationID: "price-full-list",
		Method:      http.MethodGet,
		Path:        "/prices/list",
		Summary:     "Full price-list payload for the storefront",
		Tags:        []string{"price"},
		Middlewares: h.public,
	}
}

func (h *Handler) upsertOp() huma.Operation {
	return huma.Operation{
		OperationID:   "price-upsert",
		Method:        http.MethodPost,
		Path:          "/prices",
		Summary:       "Create a price, or overwrite one when price_id is given",
		Tags:          []string{"price"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "price-update",
		Method:      http.MethodPut,
		Path:        "/prices/{id}",
		Summary:     "Replace a price row",
		Tags:        []string{"price"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "price-delete",
		Method:      http.MethodDelete,
		Path:        "/prices/{id}",
		Summary:     "Delete a price row",
		Tags:        []string{"price"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
