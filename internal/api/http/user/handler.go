package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
}

// login exchanges credentials for a bearer token. Every failure mode maps to
// the same 401 so the response never reveals whether the login id exists.
func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	token, err := h.service.Login(ctx, input.Body.LoginID, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid login id or password")
	}

	return &loginOutput{
		Body: LoginResponse{Token: token},
	}, nil
}
