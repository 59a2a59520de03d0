package siteconfig

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "config-get",
		Method:      http.MethodGet,
		Path:        "/config",
		Summary:     "Get the site configuration",
		Tags:        []string{"config"},
		Middlewares: h.public,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "config-update",
		Method:      http.MethodPut,
		Path:        "/config",
		Summary:     "Replace the site configuration",
		Tags:        []string{"config"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
