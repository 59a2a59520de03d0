package catalog

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listCategoriesOp() huma.Operation {
	return huma.Operation{
		OperationID: "category-list",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List price-list categories",
		Tags:        []string{"catalog"},
		Middlewares: h.public,
	}
}

func (h *Handler) createCategoryOp() huma.Operation {
	return huma.Operation{
		OperationID:   "category-create",
		Method:        http.MethodPost,
		Path:          "/categories",
		Summary:       "Create a category",
		Tags:          []string{"catalog"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateCategoryOp() huma.Operation {
	return huma.Operation{
		OperationID: "category-update",
		Method:      http.MethodPut,
		Path:        "/categories/{id}",
		Summary:     "Replace a category",
		Tags:        []string{"catalog"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteCategoryOp() huma.Operation {
	return huma.Operation{
		OperationID: "category-delete",
		Method:      http.MethodDelete,
		Path:        "/categories/{id}",
		Summary:     "Delete a category and its prices",
		Tags:        []string{"catalog"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) listRepairTypesOp() huma.Operation {
	return huma.Operation{
		OperationID: "repair-type-list",
		Method:      http.MethodGet,
		Path:        "/categories/repair-types",
		Summary:     "List repair types",
		Tags:        []string{"catalog"},
		Middlewares: h.public,
	}
}

func (h *Handler) createRepairTypeOp() huma.Operation {
	return huma.Operation{
		OperationID:   "repair-type-create",
		Method:        http.MethodPost,
		Path:          "/categories/repair-types",
		Summary:       "Create a repair type",
		Tags:          []string{"catalog"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateRepairTypeOp() huma.Operation {
	return huma.Operation{
		OperationID: "repair-type-update",
		Method:      http.MethodPut,
		Path:        "/categories/repair-types/{id}",
		Summary:     "Replace a repair type",
		Tags:        []string{"catalog"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteRepairTypeOp() huma.Operation {
	return huma.Operation{
		OperationID: "repair-type-delete",
		Method:      http.MethodDelete,
		Path:        "/categories/repair-types/{id}",
		Summary:     "Delete a repair type and its prices",
		Tags:        []string{"catalog"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
